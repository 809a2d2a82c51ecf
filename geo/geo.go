// Package geo provides the great-circle math the routing engine is built on.
package geo

import (
	"math"

	"github.com/mtriki/osmroute/models"
)

const earthRadiusKm = 6371.0

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// haversin is sin²(theta / 2).
func haversin(theta float64) float64 {
	s := math.Sin(theta / 2)
	return s * s
}

// Distance returns the great-circle distance between a and b in kilometres,
// using the haversine formula.
func Distance(a, b models.Coordinate) float64 {
	lat1 := DegToRad(a.Latitude)
	lat2 := DegToRad(b.Latitude)
	dLat := DegToRad(b.Latitude - a.Latitude)
	dLon := DegToRad(b.Longitude - a.Longitude)

	h := haversin(dLat) + math.Cos(lat1)*math.Cos(lat2)*haversin(dLon)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
