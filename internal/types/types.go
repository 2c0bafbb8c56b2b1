// Package types defines the shared data model for campuseats: restaurants,
// users, sessions, and menus as served by the campus restaurant API.
package types

import "strings"

// PointType is the GeoJSON geometry type used by the restaurant API.
const PointType = "Point"

// Location is a GeoJSON point. Coordinates are [longitude, latitude].
type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// Valid reports whether the location carries a usable coordinate pair.
func (l *Location) Valid() bool {
	return l != nil && len(l.Coordinates) == 2
}

// Lat returns the latitude component, or 0 when invalid.
func (l *Location) Lat() float64 {
	if !l.Valid() {
		return 0
	}
	return l.Coordinates[1]
}

// Lon returns the longitude component, or 0 when invalid.
func (l *Location) Lon() float64 {
	if !l.Valid() {
		return 0
	}
	return l.Coordinates[0]
}

// Restaurant is a single campus restaurant record. Records are immutable
// once fetched; the directory replaces the full set wholesale on refresh.
type Restaurant struct {
	ID         string    `json:"_id"`
	CompanyID  int       `json:"companyId,omitempty"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	PostalCode string    `json:"postalCode,omitempty"`
	City       string    `json:"city"`
	Phone      string    `json:"phone,omitempty"`
	Company    string    `json:"company"`
	Location   *Location `json:"location,omitempty"`
}

// MatchesName reports a case-insensitive substring match on the name.
func (r Restaurant) MatchesName(term string) bool {
	return strings.Contains(strings.ToLower(r.Name), strings.ToLower(term))
}

// User is the client-side cached copy of a server-owned account. The server
// response is authoritative; local mutations are reconciled on the next
// profile round-trip.
type User struct {
	ID                  string `json:"_id"`
	Username            string `json:"username"`
	Email               string `json:"email,omitempty"`
	FavouriteRestaurant string `json:"favouriteRestaurant,omitempty"`
	Avatar              string `json:"avatar,omitempty"`
	Role                int    `json:"role,omitempty"`
}

// Course is one menu item. Diets and Price are frequently absent upstream.
type Course struct {
	Name  string `json:"name"`
	Price string `json:"price,omitempty"`
	Diets string `json:"diets,omitempty"`
}

// DayMenu groups courses under one day of a weekly menu.
type DayMenu struct {
	Date    string   `json:"date,omitempty"`
	Courses []Course `json:"courses"`
}

// DailyMenu is the response shape of GET /restaurants/daily/{id}/{lang}.
type DailyMenu struct {
	Courses []Course `json:"courses"`
}

// WeeklyMenu is the response shape of GET /restaurants/weekly/{id}/{lang}.
type WeeklyMenu struct {
	Days []DayMenu `json:"days"`
}

// LoginResponse is the payload of POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
	Data  User   `json:"data"`
}

// UserResponse wraps the user-mutating endpoint responses (POST/PUT /users,
// POST /users/avatar).
type UserResponse struct {
	Message string `json:"message,omitempty"`
	Data    User   `json:"data"`
}
