package directory

import (
	"testing"

	"campuseats/internal/geo"
	"campuseats/internal/types"
)

func TestOrderFavoriteAlwaysFirst(t *testing.T) {
	list := fixtures()
	user := &types.User{Username: "u", FavouriteRestaurant: "r3"}

	locations := []*geo.Point{nil, {Lat: 60.17, Lon: 24.94}}
	for _, l := range locations {
		got := Order(list, user, l)
		if got[0].ID != "r3" {
			t.Fatalf("favorite must sort first (loc=%v), got %s", l, got[0].ID)
		}
		// Remaining order stays stable.
		rest := []string{got[1].ID, got[2].ID, got[3].ID}
		want := []string{"r1", "r2", "r4"}
		for i := range want {
			if rest[i] != want[i] {
				t.Fatalf("non-favorite order disturbed: %v", rest)
			}
		}
	}
}

func TestOrderByDistanceWhenNoFavorite(t *testing.T) {
	list := fixtures()
	loc := &geo.Point{Lat: 60.17, Lon: 24.94} // central Helsinki

	got := Order(list, nil, loc)
	prev := -1.0
	for _, r := range got[:3] { // r3 has no coordinates, sorts last
		d := loc.DistanceTo(r.Location.Lat(), r.Location.Lon())
		if d < prev {
			t.Fatalf("distances not non-decreasing: %v after %v", d, prev)
		}
		prev = d
	}
	if got[3].ID != "r3" {
		t.Fatalf("coordinate-less restaurant should sort last, got %s", got[3].ID)
	}
}

func TestOrderPreservesInputWithoutFavoriteOrLocation(t *testing.T) {
	list := fixtures()
	got := Order(list, &types.User{Username: "u"}, nil)
	for i := range list {
		if got[i].ID != list[i].ID {
			t.Fatalf("order changed without favorite or location: %v", got)
		}
	}
}

func TestOrderDoesNotMutateInput(t *testing.T) {
	list := fixtures()
	firstBefore := list[0].ID
	_ = Order(list, nil, &geo.Point{Lat: 60.29, Lon: 25.04})
	if list[0].ID != firstBefore {
		t.Fatal("Order mutated its input slice")
	}
}

func TestOrderDanglingFavoriteFallsBack(t *testing.T) {
	// A favorite id that no longer matches any restaurant is tolerated:
	// nothing moves, nothing panics.
	list := fixtures()
	got := Order(list, &types.User{FavouriteRestaurant: "gone"}, nil)
	for i := range list {
		if got[i].ID != list[i].ID {
			t.Fatalf("dangling favorite should leave order intact: %v", got)
		}
	}
}
