// Package osm turns a raw OpenStreetMap export into the road-segment model
// the routing graph is built from: it decodes the compressed markup and
// interprets the free-form way tags per travel mode.
package osm

import (
	"strconv"
	"strings"

	"github.com/mtriki/osmroute/models"
)

// Speeds are in km/h throughout.
const (
	bicycleSpeedKmh    = 20.0
	pedestrianSpeedKmh = 5.0

	mphToKmh = 1.60934
)

// carSpeeds maps a highway classification to the default car speed used when
// the way carries no usable maxspeed tag.
var carSpeeds = map[string]float64{
	"motorway":       120,
	"motorway_link":  100,
	"trunk":          100,
	"trunk_link":     90,
	"primary":        90,
	"primary_link":   70,
	"secondary":      70,
	"secondary_link": 50,
	"tertiary":       50,
	"tertiary_link":  40,
	"unclassified":   40,
	"residential":    30,
	"road":           30,
	"service":        20,
	"living_street":  10,
}

// carHighways is the set of highway classifications cars may drive on.
var carHighways = map[string]bool{
	"motorway":       true,
	"motorway_link":  true,
	"trunk":          true,
	"trunk_link":     true,
	"primary":        true,
	"primary_link":   true,
	"secondary":      true,
	"secondary_link": true,
	"tertiary":       true,
	"tertiary_link":  true,
	"unclassified":   true,
	"residential":    true,
	"road":           true,
	"service":        true,
	"living_street":  true,
}

// softHighways are additionally open to bicycles and pedestrians but never
// to cars.
var softHighways = map[string]bool{
	"path":       true,
	"track":      true,
	"footway":    true,
	"cycleway":   true,
	"pedestrian": true,
	"steps":      true,
}

// IsRoad reports whether the tagged way is routable at all for the given
// travel mode. Explicit negative access tags are checked before the highway
// classification and always win.
func IsRoad(tags map[string]string, mode models.TransportMode) bool {
	if tags["access"] == "no" {
		return false
	}

	highway, ok := tags["highway"]
	if !ok {
		return false
	}

	switch mode {
	case models.Car:
		if tags["motor_vehicle"] == "no" {
			return false
		}
		return carHighways[highway]
	case models.Bicycle:
		if tags["bicycle"] == "no" {
			return false
		}
	case models.Pedestrian:
		if tags["foot"] == "no" {
			return false
		}
	default:
		return false
	}

	// Bicycles and pedestrians share the car network minus motorways, plus
	// the soft classifications.
	if highway == "motorway" || highway == "motorway_link" {
		return false
	}
	return carHighways[highway] || softHighways[highway]
}

// Speed returns the traversal speed in km/h for the tagged way under the
// given mode. Bicycle and pedestrian speeds are flat constants. Car speed
// comes from the classification table, overridden by a parseable maxspeed
// tag; an unparseable tag falls back to the table.
func Speed(tags map[string]string, mode models.TransportMode) float64 {
	switch mode {
	case models.Bicycle:
		return bicycleSpeedKmh
	case models.Pedestrian:
		return pedestrianSpeedKmh
	}

	speed, ok := carSpeeds[tags["highway"]]
	if !ok {
		speed = carSpeeds["residential"]
	}
	if tagged, ok := parseMaxspeed(tags["maxspeed"]); ok {
		speed = tagged
	}
	return speed
}

// parseMaxspeed parses values like "50", "50 km/h" or "30 mph". The mph unit
// is converted to km/h; anything without a leading number is rejected.
func parseMaxspeed(value string) (float64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	i := 0
	for i < len(value) && (value[i] == '.' || (value[i] >= '0' && value[i] <= '9')) {
		i++
	}
	speed, err := strconv.ParseFloat(value[:i], 64)
	if err != nil || speed <= 0 {
		return 0, false
	}

	if strings.Contains(strings.ToLower(value[i:]), "mph") {
		speed *= mphToKmh
	}
	return speed, true
}

// IsOneWay reports whether the way may only be traversed in declared node
// order. One-way restrictions bind cars only; bicycles and pedestrians treat
// every way as bidirectional.
func IsOneWay(tags map[string]string, mode models.TransportMode) bool {
	if mode != models.Car {
		return false
	}
	switch tags["oneway"] {
	case "yes", "true", "1":
		return true
	}
	return false
}

// AccessibleBy derives the coarse accessibility label for the way from its
// highway classification, narrowed by negative access tags. An access=no tag
// degrades the label to pedestrian-only rather than removing the way; road
// admissibility already rejects such ways for every mode, so the label is
// only ever consulted on admitted ways.
func AccessibleBy(tags map[string]string) models.Accessibility {
	if tags["access"] == "no" {
		return models.AccessPedestrian
	}

	var acc models.Accessibility
	switch tags["highway"] {
	case "motorway", "motorway_link":
		acc = models.AccessCar
	case "cycleway":
		acc = models.AccessBicycle
	case "footway", "pedestrian", "steps":
		acc = models.AccessPedestrian
	default:
		acc = models.AccessAll
	}

	// The label cannot express bicycle+pedestrian, so each negation narrows
	// one step down.
	if tags["motor_vehicle"] == "no" && (acc == models.AccessAll || acc == models.AccessCar) {
		acc = models.AccessBicycle
	}
	if tags["bicycle"] == "no" && (acc == models.AccessAll || acc == models.AccessBicycle) {
		acc = models.AccessPedestrian
	}
	return acc
}
