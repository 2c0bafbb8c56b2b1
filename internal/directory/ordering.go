package directory

import (
	"math"
	"sort"

	"campuseats/internal/geo"
	"campuseats/internal/types"
)

// Order applies the render ordering policy to a filtered list:
//
//   - when user has a favorite set, that restaurant sorts first and the
//     rest keep their relative order;
//   - else when the device location is known, ascending haversine distance
//     (restaurants without coordinates sort last);
//   - else the input order is preserved.
//
// The input slice is not mutated.
func Order(list []types.Restaurant, user *types.User, loc *geo.Point) []types.Restaurant {
	out := make([]types.Restaurant, len(list))
	copy(out, list)

	if user != nil && user.FavouriteRestaurant != "" {
		fav := user.FavouriteRestaurant
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ID == fav && out[j].ID != fav
		})
		return out
	}

	if loc != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return distanceOrInf(out[i], loc) < distanceOrInf(out[j], loc)
		})
	}
	return out
}

func distanceOrInf(r types.Restaurant, loc *geo.Point) float64 {
	if !r.Location.Valid() {
		return math.Inf(1)
	}
	return loc.DistanceTo(r.Location.Lat(), r.Location.Lon())
}
