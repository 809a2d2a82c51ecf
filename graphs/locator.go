package graphs

import (
	"github.com/mtriki/osmroute/geo"
	"github.com/mtriki/osmroute/models"
)

// NearestNode returns the id of the routing node closest to c by great-circle
// distance. There is no distance cutoff and no spatial index: it is a linear
// scan, which is fine because it runs at most twice per route request. The
// second return is false only when the graph is empty.
func (g *Graph) NearestNode(c models.Coordinate) (string, bool) {
	var bestID string
	bestDist := -1.0
	for id, n := range g.Nodes {
		d := geo.Distance(c, n.Coord)
		if bestDist < 0 || d < bestDist {
			bestID = id
			bestDist = d
		}
	}
	return bestID, bestDist >= 0
}
