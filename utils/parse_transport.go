package utils

import (
	"strings"

	"github.com/mtriki/osmroute/models"
)

// ParseTransportMode maps user-facing mode names (and common synonyms) to a
// TransportMode, returning Unknown for anything unrecognized.
func ParseTransportMode(input string) models.TransportMode {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "car", "driving", "drive":
		return models.Car
	case "bicycle", "bike", "cycling":
		return models.Bicycle
	case "pedestrian", "foot", "walk", "walking":
		return models.Pedestrian
	default:
		return models.Unknown
	}
}
