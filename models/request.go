package models

type RouteRequest struct {
	Map         string     `json:"map,omitempty"`
	Origin      Coordinate `json:"origin"`
	Destination Coordinate `json:"destination"`
	Mode        string     `json:"mode"`
}
