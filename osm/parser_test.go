package osm

import (
	"bytes"
	"compress/gzip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtriki/osmroute/models"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const sampleMap = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="45.50" lon="-73.56"/>
  <node id="2" lat="45.51" lon="-73.56"/>
  <node id="3" lat="45.52" lon="-73.56"/>
  <node id="4" lat="45.50" lon="-73.57"/>
  <way id="100">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
    <tag k="oneway" v="yes"/>
  </way>
  <way id="200">
    <nd ref="1"/>
    <nd ref="4"/>
    <tag k="highway" v="footway"/>
  </way>
  <way id="300">
    <nd ref="1"/>
    <nd ref="2"/>
    <tag k="building" v="yes"/>
  </way>
  <way id="400">
    <nd ref="1"/>
    <nd ref="999"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`

func TestParseRoadsCar(t *testing.T) {
	segments := ParseRoads(gzipBytes(t, sampleMap), models.Car)
	// The footway is not a car road, the building is not a road at all, and
	// way 400 resolves only one of its two node refs.
	require.Len(t, segments, 1)

	seg := segments[0]
	assert.Equal(t, "100", seg.ID)
	require.Len(t, seg.Points, 3)
	assert.Equal(t, models.Coordinate{Latitude: 45.50, Longitude: -73.56}, seg.Points[0])
	assert.Equal(t, models.Coordinate{Latitude: 45.52, Longitude: -73.56}, seg.Points[2])
	assert.Equal(t, 30.0, seg.SpeedKmh)
	assert.True(t, seg.OneWay)
	assert.Equal(t, models.AccessAll, seg.AccessibleBy)
	assert.Equal(t, "residential", seg.Tags["highway"])
}

func TestParseRoadsPedestrian(t *testing.T) {
	segments := ParseRoads(gzipBytes(t, sampleMap), models.Pedestrian)
	require.Len(t, segments, 2)

	// Document order is preserved.
	assert.Equal(t, "100", segments[0].ID)
	assert.Equal(t, "200", segments[1].ID)

	// One-way never binds pedestrians, and speed is the walking constant.
	assert.False(t, segments[0].OneWay)
	assert.Equal(t, 5.0, segments[0].SpeedKmh)
	assert.Equal(t, models.AccessPedestrian, segments[1].AccessibleBy)
}

func TestParseRoadsSkipsUnresolvableRefs(t *testing.T) {
	doc := `<osm>
  <node id="1" lat="45.50" lon="-73.56"/>
  <node id="2" lat="45.51" lon="-73.56"/>
  <node id="3" lat="45.52" lon="-73.56"/>
  <way id="100">
    <nd ref="1"/>
    <nd ref="999"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`
	segments := ParseRoads(gzipBytes(t, doc), models.Car)
	require.Len(t, segments, 1)
	assert.Len(t, segments[0].Points, 3)
}

func TestParseRoadsDegradesToEmpty(t *testing.T) {
	t.Run("corrupt gzip", func(t *testing.T) {
		assert.Empty(t, ParseRoads([]byte("not gzip at all"), models.Car))
	})
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, ParseRoads(nil, models.Car))
	})
	t.Run("invalid xml", func(t *testing.T) {
		assert.Empty(t, ParseRoads(gzipBytes(t, "<osm><node"), models.Car))
	})
	t.Run("missing osm root", func(t *testing.T) {
		assert.Empty(t, ParseRoads(gzipBytes(t, "<map></map>"), models.Car))
	})
	t.Run("no ways", func(t *testing.T) {
		assert.Empty(t, ParseRoads(gzipBytes(t, `<osm><node id="1" lat="1" lon="1"/></osm>`), models.Car))
	})
}
