package models

// RouteResponse carries one computed route. Path is the ordered sequence of
// routing node ids from start to end; it is empty when no route exists, in
// which case Examined still reports how much of the graph the search covered.
type RouteResponse struct {
	Map           string        `json:"map,omitempty"`
	Mode          TransportMode `json:"mode"`
	StartNode     string        `json:"start_node"`
	EndNode       string        `json:"end_node"`
	Path          []string      `json:"path"`
	Geometry      []Coordinate  `json:"geometry,omitempty"`
	ExaminedCount int           `json:"examined_count"`
	DistanceKm    float64       `json:"distance_km"`
	TimeHours     float64       `json:"time_hours"`
}

type ModesResponse struct {
	Modes []TransportMode `json:"modes"`
}

type MapsResponse struct {
	Maps []string `json:"maps"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
