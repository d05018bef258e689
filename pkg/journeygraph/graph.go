package journeygraph

import "golang.org/x/exp/maps"

// EdgeKind distinguishes in-vehicle movement from out-of-vehicle transfers.
type EdgeKind string

const (
	EdgeKindTravel   EdgeKind = "travel"
	EdgeKindTransfer EdgeKind = "transfer"
)

// Location is a WGS84 coordinate pair.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Station is a node in the network graph. Location is nil when the schedule
// feed carried no coordinates for the stop.
type Station struct {
	ID       string
	Name     string
	Location *Location
}

type Edge struct {
	From   string
	To     string
	Kind   EdgeKind
	Weight int // scheduled seconds, never negative

	// Route is only set on travel edges. When several routes serve the same
	// stop pair this is just one of them, not a guarantee of which.
	Route string
}

type pairKey struct {
	from string
	to   string
}

// Graph is a directed weighted network over stations, holding at most one
// edge per ordered (from, to) pair. It is built once per planning session by
// Build and never mutated afterwards, so concurrent read-only searches over
// the same Graph need no locking.
type Graph struct {
	stations map[string]*Station

	// Outgoing edges per station in insertion order. byPair indexes into the
	// slices so a duplicate ordered pair replaces in place rather than
	// appending, keeping both uniqueness and a stable expansion order.
	out    map[string][]Edge
	byPair map[pairKey]int

	edgeCount int
}

func newGraph() *Graph {
	return &Graph{
		stations: map[string]*Station{},
		out:      map[string][]Edge{},
		byPair:   map[pairKey]int{},
	}
}

func (g *Graph) addStation(station *Station) {
	g.stations[station.ID] = station
}

// setEdge inserts an edge, overwriting any existing edge for the same ordered
// pair. Reports whether an existing edge was replaced.
func (g *Graph) setEdge(edge Edge) bool {
	key := pairKey{from: edge.From, to: edge.To}

	if index, exists := g.byPair[key]; exists {
		g.out[edge.From][index] = edge
		return true
	}

	g.byPair[key] = len(g.out[edge.From])
	g.out[edge.From] = append(g.out[edge.From], edge)
	g.edgeCount += 1

	return false
}

func (g *Graph) Station(id string) *Station {
	return g.stations[id]
}

func (g *Graph) HasStation(id string) bool {
	_, exists := g.stations[id]
	return exists
}

// Edges returns the outgoing edges of a station in insertion order. The
// returned slice is shared with the graph and must not be modified.
func (g *Graph) Edges(from string) []Edge {
	return g.out[from]
}

// EdgeBetween returns the single edge for an ordered station pair, if any.
func (g *Graph) EdgeBetween(from string, to string) (Edge, bool) {
	index, exists := g.byPair[pairKey{from: from, to: to}]
	if !exists {
		return Edge{}, false
	}

	return g.out[from][index], true
}

func (g *Graph) StationCount() int {
	return len(g.stations)
}

func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// StationIDs returns every station identifier in the graph, in no particular
// order.
func (g *Graph) StationIDs() []string {
	return maps.Keys(g.stations)
}
