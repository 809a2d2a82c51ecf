package graphs

import (
	"container/heap"

	"github.com/mtriki/osmroute/geo"
)

// PathResult is the outcome of one A* search. An empty Path with a populated
// Examined log means the search exhausted the start node's component without
// reaching the end node; that is a normal outcome, not an error.
type PathResult struct {
	Path       []string // ordered node ids, start first, end last
	Examined   []string // nodes in expansion order, for visualization replay
	DistanceKm float64
	TimeHours  float64
}

// FindPath runs A* from startID to endID and returns the path with its total
// distance and travel time. Edge cost is travel time in hours (distance over
// the owning segment's speed). The heuristic is the straight-line distance to
// the goal in kilometres, deliberately not scaled to a time unit; with road
// speeds below 1 km/h it would stop being admissible, which real road speeds
// never hit. All search state lives in this call's scratch maps, so any
// number of FindPath calls may run concurrently over one graph.
func (g *Graph) FindPath(startID, endID string) (PathResult, error) {
	start, ok := g.Nodes[startID]
	if !ok {
		return PathResult{}, ErrNodeNotFound
	}
	end, ok := g.Nodes[endID]
	if !ok {
		return PathResult{}, ErrNodeNotFound
	}

	gScore := map[string]float64{startID: 0}
	cameFrom := make(map[string]string)
	closed := make(map[string]bool)
	var examined []string

	pq := &frontier{}
	heap.Init(pq)
	heap.Push(pq, &frontierItem{node: startID, priority: geo.Distance(start.Coord, end.Coord)})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*frontierItem)
		current := item.node
		if current == endID {
			return g.reconstruct(cameFrom, startID, endID, examined), nil
		}
		if closed[current] {
			continue
		}
		closed[current] = true
		examined = append(examined, current)

		for neighborID, edge := range g.Nodes[current].Edges {
			if closed[neighborID] {
				continue
			}
			tentative := gScore[current] + edge.DistanceKm/g.Segments[edge.SegmentID].SpeedKmh
			if old, ok := gScore[neighborID]; !ok || tentative < old {
				cameFrom[neighborID] = current
				gScore[neighborID] = tentative

				estimated := tentative + geo.Distance(g.Nodes[neighborID].Coord, end.Coord)
				heap.Push(pq, &frontierItem{node: neighborID, priority: estimated})
			}
		}
	}

	// Frontier exhausted: no route. The examined log still covers the whole
	// reachable component for the caller to replay.
	return PathResult{Examined: examined}, nil
}

// reconstruct walks the back-pointers from end to start and accumulates the
// per-edge distance and time along the way.
func (g *Graph) reconstruct(cameFrom map[string]string, startID, endID string, examined []string) PathResult {
	var reversed []string
	for cur := endID; ; {
		reversed = append(reversed, cur)
		if cur == startID {
			break
		}
		cur = cameFrom[cur]
	}

	res := PathResult{Examined: examined, Path: make([]string, 0, len(reversed))}
	for i := len(reversed) - 1; i >= 0; i-- {
		res.Path = append(res.Path, reversed[i])
	}
	for i := 1; i < len(res.Path); i++ {
		edge := g.Nodes[res.Path[i-1]].Edges[res.Path[i]]
		res.DistanceKm += edge.DistanceKm
		res.TimeHours += edge.DistanceKm / g.Segments[edge.SegmentID].SpeedKmh
	}
	return res
}

type frontierItem struct {
	node     string
	priority float64
}

// frontier is a min-heap on estimated total cost, with lazy decrease-key:
// improved nodes are pushed again and stale entries are skipped on pop.
type frontier []*frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].priority < f[j].priority }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
