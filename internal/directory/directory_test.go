package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"campuseats/internal/types"
)

type fakeLister struct {
	list []types.Restaurant
	err  error
}

func (f *fakeLister) Restaurants(ctx context.Context) ([]types.Restaurant, error) {
	return f.list, f.err
}

func loc(lat, lon float64) *types.Location {
	return &types.Location{Type: types.PointType, Coordinates: []float64{lon, lat}}
}

func fixtures() []types.Restaurant {
	return []types.Restaurant{
		{ID: "r1", Name: "Bistro Alpha", City: "Helsinki", Company: "Sodexo", Location: loc(60.17, 24.94)},
		{ID: "r2", Name: "Cafe Beta", City: "Espoo", Company: "Fazer", Location: loc(60.21, 24.66)},
		{ID: "r3", Name: "Alpha Deli", City: "Helsinki", Company: "Fazer"},
		{ID: "r4", Name: "Gamma Grill", City: "Vantaa", Company: "Sodexo", Location: loc(60.29, 25.04)},
	}
}

func refreshed(t *testing.T, list []types.Restaurant) *Directory {
	t.Helper()
	d := New(&fakeLister{list: list}, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	return d
}

func TestRefreshPopulatesListAndOptions(t *testing.T) {
	d := refreshed(t, []types.Restaurant{
		{ID: "r1", Name: "A", City: "Helsinki", Company: "X"},
	})

	all := d.All()
	if len(all) != 1 || all[0].Name != "A" {
		t.Fatalf("unexpected list: %+v", all)
	}
	if diff := cmp.Diff([]string{"Helsinki"}, d.Cities()); diff != "" {
		t.Fatalf("cities mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"X"}, d.Providers()); diff != "" {
		t.Fatalf("providers mismatch (-want +got):\n%s", diff)
	}
}

func TestRefreshFailureKeepsPriorList(t *testing.T) {
	lister := &fakeLister{list: fixtures()}
	d := New(lister, nil)
	if err := d.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}

	lister.err = errors.New("boom")
	if err := d.Refresh(context.Background()); err == nil {
		t.Fatal("expected refresh error")
	}
	if len(d.All()) != len(fixtures()) {
		t.Fatal("prior list must survive a failed refresh")
	}
}

func TestOptionSetsSortedUnique(t *testing.T) {
	d := refreshed(t, fixtures())
	if diff := cmp.Diff([]string{"Espoo", "Helsinki", "Vantaa"}, d.Cities()); diff != "" {
		t.Fatalf("cities (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Fazer", "Sodexo"}, d.Providers()); diff != "" {
		t.Fatalf("providers (-want +got):\n%s", diff)
	}
}

func TestFilterPredicates(t *testing.T) {
	d := refreshed(t, fixtures())

	ids := func(list []types.Restaurant) []string {
		out := make([]string, len(list))
		for i, r := range list {
			out[i] = r.ID
		}
		return out
	}

	tests := []struct {
		name                   string
		city, provider, search string
		want                   []string
	}{
		{"no predicates", "", "", "", []string{"r1", "r2", "r3", "r4"}},
		{"city", "Helsinki", "", "", []string{"r1", "r3"}},
		{"provider", "", "Fazer", "", []string{"r2", "r3"}},
		{"search is case-insensitive substring", "", "", "alpha", []string{"r1", "r3"}},
		{"all three combined", "Helsinki", "Fazer", "deli", []string{"r3"}},
		{"no match", "Helsinki", "Fazer", "gamma", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(d.Filter(tt.city, tt.provider, tt.search))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("filter (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilterIdempotent(t *testing.T) {
	d := refreshed(t, fixtures())
	once := d.Filter("Helsinki", "", "a")

	d2 := refreshed(t, once)
	twice := d2.Filter("Helsinki", "", "a")
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("filter not idempotent (-once +twice):\n%s", diff)
	}
}

func TestFilterOrderIndependent(t *testing.T) {
	d := refreshed(t, fixtures())

	// city then provider
	cityFirst := refreshed(t, d.Filter("Helsinki", "", "")).Filter("", "Fazer", "")
	// provider then city
	providerFirst := refreshed(t, d.Filter("", "Fazer", "")).Filter("Helsinki", "", "")

	if diff := cmp.Diff(cityFirst, providerFirst); diff != "" {
		t.Fatalf("predicate order changed the result (-city-first +provider-first):\n%s", diff)
	}
}
