// Package directory holds the in-memory restaurant collection: wholesale
// refresh from the API, derived filter option sets, and the AND-combined
// filter predicates behind the list view.
package directory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"campuseats/internal/types"
)

// Lister is the slice of the API client the directory needs.
type Lister interface {
	Restaurants(ctx context.Context) ([]types.Restaurant, error)
}

// Directory is the replace-on-refresh restaurant collection.
type Directory struct {
	mu          sync.RWMutex
	client      Lister
	logger      *zap.Logger
	restaurants []types.Restaurant
	cities      []string
	providers   []string
}

// New creates an empty directory over the given client.
func New(client Lister, logger *zap.Logger) *Directory {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{client: client, logger: logger}
}

// Refresh fetches the full restaurant list and replaces the collection
// atomically, then re-derives the sorted unique city and provider option
// sets. On failure the prior list stays in place and the error is returned
// for the list view to surface.
func (d *Directory) Refresh(ctx context.Context) error {
	list, err := d.client.Restaurants(ctx)
	if err != nil {
		d.logger.Warn("directory refresh failed, keeping prior list", zap.Error(err))
		return err
	}

	cities := uniqueSorted(list, func(r types.Restaurant) string { return r.City })
	providers := uniqueSorted(list, func(r types.Restaurant) string { return r.Company })

	d.mu.Lock()
	d.restaurants = list
	d.cities = cities
	d.providers = providers
	d.mu.Unlock()

	d.logger.Info("directory refreshed",
		zap.Int("restaurants", len(list)),
		zap.Int("cities", len(cities)),
		zap.Int("providers", len(providers)))
	return nil
}

// All returns the current full list in fetch order.
func (d *Directory) All() []types.Restaurant {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]types.Restaurant, len(d.restaurants))
	copy(out, d.restaurants)
	return out
}

// Get looks a restaurant up by id.
func (d *Directory) Get(id string) (types.Restaurant, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, r := range d.restaurants {
		if r.ID == id {
			return r, true
		}
	}
	return types.Restaurant{}, false
}

// Cities returns the sorted unique city option set.
func (d *Directory) Cities() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.cities...)
}

// Providers returns the sorted unique provider option set.
func (d *Directory) Providers() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]string(nil), d.providers...)
}

// Filter applies up to three predicates, ANDed: exact city match, exact
// provider match, case-insensitive substring match on the name. An empty
// argument disables its predicate. Conjunction is commutative, so the
// application order is irrelevant.
func (d *Directory) Filter(city, provider, search string) []types.Restaurant {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]types.Restaurant, 0, len(d.restaurants))
	for _, r := range d.restaurants {
		if city != "" && r.City != city {
			continue
		}
		if provider != "" && r.Company != provider {
			continue
		}
		if search != "" && !r.MatchesName(search) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func uniqueSorted(list []types.Restaurant, key func(types.Restaurant) string) []string {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, r := range list {
		k := strings.TrimSpace(key(r))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
