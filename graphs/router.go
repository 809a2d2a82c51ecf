package graphs

import (
	"github.com/mtriki/osmroute/models"
)

// Router is the routing engine for one segment set and one travel mode. The
// graph is built once at construction; endpoints are snapped per request.
type Router struct {
	graph   *Graph
	mode    models.TransportMode
	startID string
	endID   string
}

// NewRouter builds the routing graph for the given segments and travel mode.
func NewRouter(segments []models.RoadSegment, mode models.TransportMode) *Router {
	return &Router{
		graph: BuildGraph(segments, mode),
		mode:  mode,
	}
}

// Mode returns the travel mode this router was built for.
func (r *Router) Mode() models.TransportMode { return r.mode }

// Graph exposes the built graph for direct lookups.
func (r *Router) Graph() *Graph { return r.graph }

// SetEndpoints snaps the origin and destination to their nearest routing
// nodes and remembers them for FindPath. It fails only when the graph is
// empty, since the nearest-node scan has no distance cutoff.
func (r *Router) SetEndpoints(origin, destination models.Coordinate) (string, string, error) {
	startID, ok := r.graph.NearestNode(origin)
	if !ok {
		return "", "", ErrEmptyGraph
	}
	endID, ok := r.graph.NearestNode(destination)
	if !ok {
		return "", "", ErrEmptyGraph
	}
	r.startID, r.endID = startID, endID
	return startID, endID, nil
}

// FindPath searches between the endpoints set by SetEndpoints. Calling it
// before endpoints were resolved is a caller-sequencing bug and returns
// ErrNoEndpoints. An unreachable destination is not an error: the result
// carries an empty path and the full examined-node log.
func (r *Router) FindPath() (PathResult, error) {
	if r.startID == "" || r.endID == "" {
		return PathResult{}, ErrNoEndpoints
	}
	return r.graph.FindPath(r.startID, r.endID)
}

// NodeCoordinate looks up a routing node's coordinate by exact id.
func (r *Router) NodeCoordinate(id string) (models.Coordinate, bool) {
	return r.graph.NodeCoordinate(id)
}

// Segment looks up a road segment by exact id.
func (r *Router) Segment(id string) (models.RoadSegment, bool) {
	return r.graph.Segment(id)
}
