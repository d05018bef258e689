package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transito/transito/pkg/journeygraph"
	"github.com/transito/transito/pkg/journeyplanner"
)

type fakeStopSource struct {
	stations []journeygraph.StationRecord
}

func (f *fakeStopSource) Stations() ([]journeygraph.StationRecord, error) {
	return f.stations, nil
}

func coord(v float64) *float64 {
	return &v
}

func testApp(t *testing.T) *testAppHandle {
	t.Helper()

	stations := []journeygraph.StationRecord{
		{ID: "A", Name: "Alpha", Latitude: coord(40.7580), Longitude: coord(-73.9855)},
		{ID: "B", Name: "Bravo", Latitude: coord(40.7527), Longitude: coord(-73.9772)},
		{ID: "C", Name: "Charlie", Latitude: coord(40.7359), Longitude: coord(-73.9906)},
	}

	cfg := journeygraph.DefaultConfig()
	graph, _ := journeygraph.Build(cfg, stations, []journeygraph.TravelRecord{
		{From: "A", To: "B", DurationSeconds: 100, Route: "1"},
		{From: "B", To: "C", DurationSeconds: 200, Route: "1"},
	}, nil)

	planner := journeyplanner.NewPlanner(graph, journeygraph.NewHaversineHeuristic(cfg, graph))

	return &testAppHandle{
		app: SetupApp(planner, &fakeStopSource{stations: stations}, nil),
	}
}

type testAppHandle struct {
	app *fiber.App
}

func (h *testAppHandle) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	response, err := h.app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)

	body, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	response.Body.Close()

	return response, body
}

func TestAPIVersion(t *testing.T) {
	response, body := testApp(t).get(t, "/core/version")

	assert.Equal(t, http.StatusOK, response.StatusCode)
	assert.JSONEq(t, `{"version":"1.0"}`, string(body))
}

func TestListStops(t *testing.T) {
	response, body := testApp(t).get(t, "/core/stops")
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var stops []map[string]any
	require.NoError(t, json.Unmarshal(body, &stops))
	assert.Len(t, stops, 3)
}

func TestGetStop(t *testing.T) {
	handle := testApp(t)

	response, body := handle.get(t, "/core/stops/B")
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var stop map[string]any
	require.NoError(t, json.Unmarshal(body, &stop))
	assert.Equal(t, "Bravo", stop["name"])

	response, _ = handle.get(t, "/core/stops/unknown")
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
}

func TestPlanBetweenStops(t *testing.T) {
	response, body := testApp(t).get(t, "/core/planner/A/C")
	assert.Equal(t, http.StatusOK, response.StatusCode)

	var route journeyplanner.RouteResult
	require.NoError(t, json.Unmarshal(body, &route))

	assert.Equal(t, []string{"A", "B", "C"}, route.Stops)
	assert.Equal(t, 300.0, route.TotalSeconds)
	require.Len(t, route.Legs, 2)
}

func TestPlanBetweenStopsUnknownStation(t *testing.T) {
	response, body := testApp(t).get(t, "/core/planner/X/C")
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Contains(t, string(body), "not in the network graph")
}

func TestPlanBetweenStopsNoPath(t *testing.T) {
	response, body := testApp(t).get(t, "/core/planner/C/A")
	assert.Equal(t, http.StatusNotFound, response.StatusCode)
	assert.Contains(t, string(body), "no path found")
}
