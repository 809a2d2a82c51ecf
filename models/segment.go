package models

// Accessibility is the coarse classification of who may use a road segment.
type Accessibility string

const (
	AccessCar        Accessibility = "car"
	AccessBicycle    Accessibility = "bicycle"
	AccessPedestrian Accessibility = "pedestrian"
	AccessAll        Accessibility = "all"
)

// Allows reports whether a segment with this classification is usable by mode.
func (a Accessibility) Allows(mode TransportMode) bool {
	return a == AccessAll || string(a) == string(mode)
}

// RoadSegment is one routable polyline derived from a single map way.
// It is produced once by the ingestion pipeline and never mutated after.
type RoadSegment struct {
	ID           string            `json:"id"`
	Points       []Coordinate      `json:"points"` // always >= 2
	Tags         map[string]string `json:"tags,omitempty"`
	SpeedKmh     float64           `json:"speed_kmh"` // always > 0
	OneWay       bool              `json:"one_way"`
	AccessibleBy Accessibility     `json:"accessible_by"`
}
