// Package graphs builds the navigable routing graph from road segments and
// runs shortest-time searches over it.
package graphs

import (
	"errors"
	"fmt"

	"github.com/mtriki/osmroute/geo"
	"github.com/mtriki/osmroute/models"
)

var (
	// ErrEmptyGraph is returned when an endpoint cannot be snapped because
	// the graph has no nodes at all.
	ErrEmptyGraph = errors.New("graphs: graph has no routing nodes")

	// ErrNoEndpoints is returned by FindPath when SetEndpoints has not been
	// called successfully first.
	ErrNoEndpoints = errors.New("graphs: endpoints not set")

	// ErrNodeNotFound is returned when a search references a node id that is
	// not part of the graph.
	ErrNodeNotFound = errors.New("graphs: node not found")
)

// Edge is a directed connection to a neighboring routing node. It keeps the
// owning segment id so the search can recover the segment's speed.
type Edge struct {
	DistanceKm float64
	SegmentID  string
}

// Node is one routing node, a single polyline vertex of one segment. Nodes
// carry no search state: a built graph is immutable and can serve any number
// of searches, including concurrent ones.
type Node struct {
	ID    string
	Coord models.Coordinate
	Edges map[string]Edge // neighbor node id -> edge
}

// Graph maps node ids to routing nodes for one travel mode. It must be
// rebuilt whenever the segment set or the travel mode changes, since both
// accessibility and directionality depend on the mode.
type Graph struct {
	Nodes    map[string]*Node
	Segments map[string]models.RoadSegment
}

// NodeID is the composite id of a segment's n-th polyline vertex. Segments
// meeting at the same physical coordinate keep distinct nodes: junctions are
// not merged (a known gap of this model, inherited deliberately).
func NodeID(segmentID string, index int) string {
	return fmt.Sprintf("%s_%d", segmentID, index)
}

// BuildGraph constructs the routing graph for one travel mode. Segments the
// mode may not use are skipped. Every adjacent vertex pair contributes a
// forward edge, and a reverse edge unless the segment is one-way and the
// mode is car.
func BuildGraph(segments []models.RoadSegment, mode models.TransportMode) *Graph {
	g := &Graph{
		Nodes:    make(map[string]*Node),
		Segments: make(map[string]models.RoadSegment),
	}

	for _, seg := range segments {
		if !seg.AccessibleBy.Allows(mode) {
			continue
		}
		g.Segments[seg.ID] = seg

		prev := g.ensureNode(NodeID(seg.ID, 0), seg.Points[0])
		for i := 1; i < len(seg.Points); i++ {
			cur := g.ensureNode(NodeID(seg.ID, i), seg.Points[i])
			dist := geo.Distance(prev.Coord, cur.Coord)

			prev.Edges[cur.ID] = Edge{DistanceKm: dist, SegmentID: seg.ID}
			if !seg.OneWay || mode != models.Car {
				cur.Edges[prev.ID] = Edge{DistanceKm: dist, SegmentID: seg.ID}
			}
			prev = cur
		}
	}
	return g
}

func (g *Graph) ensureNode(id string, c models.Coordinate) *Node {
	if n, ok := g.Nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Coord: c, Edges: make(map[string]Edge)}
	g.Nodes[id] = n
	return n
}

// NodeCoordinate looks up a routing node's coordinate by exact id.
func (g *Graph) NodeCoordinate(id string) (models.Coordinate, bool) {
	n, ok := g.Nodes[id]
	if !ok {
		return models.Coordinate{}, false
	}
	return n.Coord, true
}

// Segment looks up a road segment by exact id.
func (g *Graph) Segment(id string) (models.RoadSegment, bool) {
	seg, ok := g.Segments[id]
	return seg, ok
}
