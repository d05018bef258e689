package journeyplanner

import (
	"github.com/transito/transito/pkg/journeygraph"
)

// RouteLeg is one traversed edge of a planned route, kept for display only.
type RouteLeg struct {
	From    string                `json:"from"`
	To      string                `json:"to"`
	Kind    journeygraph.EdgeKind `json:"kind"`
	Seconds int                   `json:"seconds"`
	Route   string                `json:"route,omitempty"`
}

// RouteResult is a successfully planned route between two stations.
type RouteResult struct {
	Stops        []string   `json:"stops"`
	TotalSeconds float64    `json:"total_seconds"`
	Legs         []RouteLeg `json:"legs"`
}

// Planner runs shortest-path queries over one immutable graph snapshot. It is
// safe to share across goroutines as neither the graph nor the heuristic hold
// mutable state.
type Planner struct {
	graph     *journeygraph.Graph
	heuristic journeygraph.Heuristic
}

func NewPlanner(graph *journeygraph.Graph, heuristic journeygraph.Heuristic) *Planner {
	return &Planner{
		graph:     graph,
		heuristic: heuristic,
	}
}

func (p *Planner) Graph() *journeygraph.Graph {
	return p.graph
}

// PlanRoute runs an A* search from origin to destination and returns the
// minimum-travel-time route. It fails with *NodeNotFoundError before
// searching when either identifier is unknown, and with ErrNoPathFound when
// the pair is disconnected. A partial route is never returned.
func (p *Planner) PlanRoute(origin string, destination string) (*RouteResult, error) {
	if !p.graph.HasStation(origin) {
		return nil, &NodeNotFoundError{ID: origin}
	}
	if !p.graph.HasStation(destination) {
		return nil, &NodeNotFoundError{ID: destination}
	}

	gScore := map[string]float64{origin: 0}
	predecessor := map[string]string{}
	finalized := map[string]bool{}

	open := &frontier{}
	open.add(origin, p.heuristic(origin, destination))

	for !open.empty() {
		current, _ := open.next()

		if current.stationID == destination {
			return p.reconstruct(origin, destination, gScore[destination], predecessor), nil
		}

		// Stale frontier entry for an already settled station.
		if finalized[current.stationID] {
			continue
		}
		finalized[current.stationID] = true

		for _, edge := range p.graph.Edges(current.stationID) {
			candidate := gScore[current.stationID] + float64(edge.Weight)

			known, seen := gScore[edge.To]
			if seen && candidate >= known {
				continue
			}

			gScore[edge.To] = candidate
			predecessor[edge.To] = current.stationID
			open.add(edge.To, candidate+p.heuristic(edge.To, destination))
		}
	}

	return nil, ErrNoPathFound
}

func (p *Planner) reconstruct(origin string, destination string, totalSeconds float64, predecessor map[string]string) *RouteResult {
	stops := []string{destination}
	for stops[len(stops)-1] != origin {
		stops = append(stops, predecessor[stops[len(stops)-1]])
	}

	// Reverse into origin-first order.
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}

	legs := make([]RouteLeg, 0, len(stops)-1)
	for i := 0; i+1 < len(stops); i++ {
		edge, _ := p.graph.EdgeBetween(stops[i], stops[i+1])
		legs = append(legs, RouteLeg{
			From:    edge.From,
			To:      edge.To,
			Kind:    edge.Kind,
			Seconds: edge.Weight,
			Route:   edge.Route,
		})
	}

	return &RouteResult{
		Stops:        stops,
		TotalSeconds: totalSeconds,
		Legs:         legs,
	}
}
