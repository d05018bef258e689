package journeygraph

import "math"

// Heuristic estimates the remaining travel time in seconds between two
// stations. Estimates must never exceed the true minimum travel time or the
// search loses its optimality guarantee.
type Heuristic func(from string, to string) float64

// ZeroHeuristic turns the search into plain uniform-cost expansion.
func ZeroHeuristic(string, string) float64 {
	return 0
}

// NewHaversineHeuristic estimates travel time as great-circle distance over
// the configured cruising speed. Stations without coordinates, or identifiers
// not in the graph at all, estimate to 0: uninformative but still admissible,
// so the search degrades to uniform-cost behaviour rather than failing.
func NewHaversineHeuristic(cfg Config, graph *Graph) Heuristic {
	return func(from string, to string) float64 {
		origin := graph.Station(from)
		destination := graph.Station(to)

		if origin == nil || destination == nil {
			return 0
		}
		if origin.Location == nil || destination.Location == nil {
			return 0
		}

		distance := HaversineDistance(cfg.EarthRadiusMetres, *origin.Location, *destination.Location)

		return distance / cfg.CruisingSpeedMPS
	}
}

// HaversineDistance is the great-circle distance in metres between two
// coordinates on a sphere of the given radius.
func HaversineDistance(radiusMetres float64, a Location, b Location) float64 {
	phi1 := a.Latitude * math.Pi / 180
	phi2 := b.Latitude * math.Pi / 180
	deltaPhi := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLambda := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Pow(math.Sin(deltaPhi/2), 2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Pow(math.Sin(deltaLambda/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return radiusMetres * c
}
