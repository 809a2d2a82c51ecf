package osm

import (
	"bytes"
	"compress/gzip"
	"io"
	"log"
	"strconv"

	"github.com/beevik/etree"

	"github.com/mtriki/osmroute/models"
)

// ParseRoads decompresses and decodes a gzipped OSM XML export and returns
// the road segments usable by the given travel mode, in document order.
// A missing or corrupt map must not crash the caller: any decompression or
// decode failure yields an empty segment list.
func ParseRoads(compressed []byte, mode models.TransportMode) []models.RoadSegment {
	raw, err := gunzip(compressed)
	if err != nil {
		log.Printf("osm: discarding map data: %v", err)
		return nil
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		log.Printf("osm: discarding map data: %v", err)
		return nil
	}
	root := doc.SelectElement("osm")
	if root == nil {
		log.Printf("osm: discarding map data: no osm root element")
		return nil
	}

	coords := parseNodeTable(root)

	var segments []models.RoadSegment
	for _, el := range root.SelectElements("way") {
		if seg, ok := parseWay(el, coords, mode); ok {
			segments = append(segments, seg)
		}
	}
	return segments
}

func gunzip(compressed []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

// parseNodeTable extracts every node element into an id -> coordinate table.
func parseNodeTable(root *etree.Element) map[string]models.Coordinate {
	coords := make(map[string]models.Coordinate)
	for _, el := range root.SelectElements("node") {
		id := el.SelectAttrValue("id", "")
		if id == "" {
			continue
		}
		lat, errLat := strconv.ParseFloat(el.SelectAttrValue("lat", ""), 64)
		lon, errLon := strconv.ParseFloat(el.SelectAttrValue("lon", ""), 64)
		if errLat != nil || errLon != nil {
			continue
		}
		coords[id] = models.Coordinate{Latitude: lat, Longitude: lon}
	}
	return coords
}

// parseWay turns one way element into a RoadSegment if its tags admit it for
// the mode and at least two of its node references resolve.
func parseWay(el *etree.Element, coords map[string]models.Coordinate, mode models.TransportMode) (models.RoadSegment, bool) {
	tags := make(map[string]string)
	for _, tag := range el.SelectElements("tag") {
		tags[tag.SelectAttrValue("k", "")] = tag.SelectAttrValue("v", "")
	}

	if !IsRoad(tags, mode) {
		return models.RoadSegment{}, false
	}

	var points []models.Coordinate
	for _, nd := range el.SelectElements("nd") {
		if c, ok := coords[nd.SelectAttrValue("ref", "")]; ok {
			points = append(points, c)
		}
	}
	if len(points) < 2 {
		return models.RoadSegment{}, false
	}

	return models.RoadSegment{
		ID:           el.SelectAttrValue("id", ""),
		Points:       points,
		Tags:         tags,
		SpeedKmh:     Speed(tags, mode),
		OneWay:       IsOneWay(tags, mode),
		AccessibleBy: AccessibleBy(tags),
	}, true
}
