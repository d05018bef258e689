package journeygraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	// Times Square to Grand Central is roughly 1.1km
	timesSquare := Location{Latitude: 40.7580, Longitude: -73.9855}
	grandCentral := Location{Latitude: 40.7527, Longitude: -73.9772}

	distance := HaversineDistance(DefaultConfig().EarthRadiusMetres, timesSquare, grandCentral)

	assert.Greater(t, distance, 900.0)
	assert.Less(t, distance, 1500.0)
}

func TestHaversineDistanceZeroForSamePoint(t *testing.T) {
	point := Location{Latitude: 51.5072, Longitude: -0.1276}

	assert.InDelta(t, 0, HaversineDistance(6371000, point, point), 0.001)
}

func TestHaversineHeuristicEstimate(t *testing.T) {
	cfg := DefaultConfig()
	graph, _ := Build(cfg, testStations(), nil, nil)

	heuristic := NewHaversineHeuristic(cfg, graph)

	estimate := heuristic("A", "B")
	assert.Greater(t, estimate, 0.0)

	// ~1.1km at 10 m/s is about 110 seconds.
	assert.InDelta(t, 110, estimate, 40)
}

func TestHaversineHeuristicMissingCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	graph, _ := Build(cfg, []StationRecord{
		{ID: "A", Latitude: coord(40.0), Longitude: coord(-73.0)},
		{ID: "B"},
	}, nil, nil)

	heuristic := NewHaversineHeuristic(cfg, graph)

	assert.Zero(t, heuristic("A", "B"))
	assert.Zero(t, heuristic("B", "A"))
}

func TestHaversineHeuristicUnknownStation(t *testing.T) {
	cfg := DefaultConfig()
	graph, _ := Build(cfg, testStations(), nil, nil)

	heuristic := NewHaversineHeuristic(cfg, graph)

	assert.Zero(t, heuristic("A", "nope"))
	assert.Zero(t, heuristic("nope", "A"))
}

func TestHaversineHeuristicNeverNegative(t *testing.T) {
	cfg := DefaultConfig()
	graph, _ := Build(cfg, testStations(), nil, nil)

	heuristic := NewHaversineHeuristic(cfg, graph)

	for _, u := range graph.StationIDs() {
		for _, v := range graph.StationIDs() {
			assert.GreaterOrEqual(t, heuristic(u, v), 0.0)
		}
	}
}
