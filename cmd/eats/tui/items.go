package tui

import (
	"strings"

	"campuseats/internal/geo"
	"campuseats/internal/types"
)

// restaurantItem adapts a restaurant to the bubbles list. The description
// line carries the card details: address, provider, distance when the
// device position is known, and the favorite mark when authenticated.
type restaurantItem struct {
	restaurant types.Restaurant
	distance   string
	favorite   bool
}

func (i restaurantItem) Title() string {
	if i.favorite {
		return "♥ " + i.restaurant.Name
	}
	return i.restaurant.Name
}

func (i restaurantItem) Description() string {
	parts := []string{i.restaurant.Address + ", " + i.restaurant.City, i.restaurant.Company}
	if i.distance != "" {
		parts = append(parts, i.distance)
	}
	return strings.Join(parts, " · ")
}

func (i restaurantItem) FilterValue() string {
	return i.restaurant.Name
}

// newRestaurantItem builds the card for one restaurant.
func newRestaurantItem(r types.Restaurant, user *types.User, loc *geo.Point) restaurantItem {
	item := restaurantItem{restaurant: r}
	if user != nil && user.FavouriteRestaurant == r.ID {
		item.favorite = true
	}
	if loc != nil && r.Location.Valid() {
		item.distance = geo.FormatKm(loc.DistanceTo(r.Location.Lat(), r.Location.Lon()))
	}
	return item
}
