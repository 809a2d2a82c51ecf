package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/mtriki/osmroute/graphs"
	"github.com/mtriki/osmroute/models"
	"github.com/mtriki/osmroute/osm"
)

// ErrUnknownMap is returned when a route references a map name that was
// never loaded.
var ErrUnknownMap = errors.New("unknown map")

// RouteService owns the loaded map files and the routing graphs derived from
// them. Graphs are built lazily per (map, mode) and cached: accessibility and
// directionality depend on the mode, so each mode gets its own graph. Built
// graphs are immutable and searches over them are safe to run concurrently.
type RouteService struct {
	mu     sync.Mutex
	maps   map[string][]byte // map name -> compressed export bytes
	graphs map[string]*graphs.Graph
}

func NewRouteService() *RouteService {
	return &RouteService{
		maps:   make(map[string][]byte),
		graphs: make(map[string]*graphs.Graph),
	}
}

// AddMap registers a compressed map export under a name, replacing any map
// with the same name and dropping its cached graphs.
func (s *RouteService) AddMap(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maps[name] = data
	for key := range s.graphs {
		if strings.HasPrefix(key, name+"/") {
			delete(s.graphs, key)
		}
	}
}

// LoadMapsFromDirectory registers every *.osm.gz file in the directory under
// its base name.
func (s *RouteService) LoadMapsFromDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("could not read maps directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".osm.gz") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("could not read map file %s: %w", path, err)
		}
		name := strings.TrimSuffix(entry.Name(), ".osm.gz")
		s.AddMap(name, data)
		log.Printf("loaded map %q (%d bytes compressed)", name, len(data))
	}
	return nil
}

// Maps lists the registered map names in sorted order.
func (s *RouteService) Maps() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.maps))
	for name := range s.maps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// graph returns the cached routing graph for (map, mode), building it from
// the stored export bytes on first use.
func (s *RouteService) graph(mapName string, mode models.TransportMode) (*graphs.Graph, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := mapName + "/" + string(mode)
	if g, ok := s.graphs[key]; ok {
		return g, nil
	}

	data, ok := s.maps[mapName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMap, mapName)
	}

	segments := osm.ParseRoads(data, mode)
	g := graphs.BuildGraph(segments, mode)
	s.graphs[key] = g
	return g, nil
}

// ComputeRoute snaps the endpoints to the mode's graph and runs the search.
// A destination that cannot be reached is a normal outcome: the response
// carries an empty path. Unresolvable endpoints (only possible on an empty
// graph) are an error.
func (s *RouteService) ComputeRoute(ctx context.Context, mapName string, mode models.TransportMode, origin, destination models.Coordinate) (models.RouteResponse, error) {
	g, err := s.graph(mapName, mode)
	if err != nil {
		return models.RouteResponse{}, err
	}

	startID, ok := g.NearestNode(origin)
	if !ok {
		return models.RouteResponse{}, graphs.ErrEmptyGraph
	}
	endID, ok := g.NearestNode(destination)
	if !ok {
		return models.RouteResponse{}, graphs.ErrEmptyGraph
	}

	result, err := g.FindPath(startID, endID)
	if err != nil {
		return models.RouteResponse{}, err
	}

	geometry := make([]models.Coordinate, 0, len(result.Path))
	for _, id := range result.Path {
		if c, ok := g.NodeCoordinate(id); ok {
			geometry = append(geometry, c)
		}
	}

	return models.RouteResponse{
		Map:           mapName,
		Mode:          mode,
		StartNode:     startID,
		EndNode:       endID,
		Path:          result.Path,
		Geometry:      geometry,
		ExaminedCount: len(result.Examined),
		DistanceKm:    result.DistanceKm,
		TimeHours:     result.TimeHours,
	}, nil
}
