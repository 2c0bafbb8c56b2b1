// Package geo provides great-circle distance math and optional device
// location resolution for the restaurant views.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Point is a latitude/longitude pair in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceKm computes the great-circle distance in kilometers between two
// coordinates using the haversine formula. Pure and total over valid degree
// inputs.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// DistanceTo computes the distance from p to the given coordinates.
func (p Point) DistanceTo(lat, lon float64) float64 {
	return DistanceKm(p.Lat, p.Lon, lat, lon)
}

// FormatKm renders a distance for card display, rounded to two decimals.
func FormatKm(km float64) string {
	return fmt.Sprintf("%.2f km", km)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
