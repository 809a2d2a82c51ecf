package handlers

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtriki/osmroute/models"
	"github.com/mtriki/osmroute/services"
)

const testMap = `<osm>
  <node id="1" lat="45.500" lon="-73.560"/>
  <node id="2" lat="45.509" lon="-73.560"/>
  <node id="3" lat="45.518" lon="-73.560"/>
  <way id="100">
    <nd ref="1"/>
    <nd ref="2"/>
    <nd ref="3"/>
    <tag k="highway" v="residential"/>
  </way>
</osm>`

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(testMap))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	routeService := services.NewRouteService()
	routeService.AddMap("downtown", buf.Bytes())

	router := mux.NewRouter()
	NewRoutingHandler(routeService).RegisterRoutes(router)
	return router
}

func postRoute(t *testing.T, router *mux.Router, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/routes", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCalculateRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := postRoute(t, router, `{
		"mode": "car",
		"origin": {"latitude": 45.500, "longitude": -73.560},
		"destination": {"latitude": 45.518, "longitude": -73.560}
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RouteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "downtown", resp.Map)
	assert.Equal(t, models.Car, resp.Mode)
	assert.Equal(t, []string{"100_0", "100_1", "100_2"}, resp.Path)
	assert.Greater(t, resp.DistanceKm, 0.0)
}

func TestCalculateRouteBadRequests(t *testing.T) {
	router := newTestRouter(t)

	t.Run("invalid body", func(t *testing.T) {
		rec := postRoute(t, router, `{`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown mode", func(t *testing.T) {
		rec := postRoute(t, router, `{"mode": "rocket"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown map", func(t *testing.T) {
		rec := postRoute(t, router, `{"mode": "car", "map": "nowhere"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestGetAvailableModes(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/routes/modes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.ModesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.ElementsMatch(t,
		[]models.TransportMode{models.Car, models.Bicycle, models.Pedestrian},
		resp.Modes)
}

func TestGetMaps(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/maps", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MapsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"downtown"}, resp.Maps)
}
