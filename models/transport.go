package models

type TransportMode string

const (
	Car        TransportMode = "car"
	Bicycle    TransportMode = "bicycle"
	Pedestrian TransportMode = "pedestrian"
	Unknown    TransportMode = "unknown"
)

// AllModes lists every mode the engine can route for.
var AllModes = []TransportMode{Car, Bicycle, Pedestrian}
