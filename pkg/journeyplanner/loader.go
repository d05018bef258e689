package journeyplanner

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/transito/transito/pkg/journeygraph"
)

// ScheduleSource is the read-only query surface of the schedule store the
// planner consumes. All three record sets are pulled up front; once the graph
// is built the search phase performs no further I/O.
type ScheduleSource interface {
	Stations() ([]journeygraph.StationRecord, error)
	TravelSegments() ([]journeygraph.TravelRecord, error)
	TransferLinks() ([]journeygraph.TransferRecord, error)
}

// LoadGraph pulls the schedule snapshot and builds a fresh graph for this
// planning session. A store failure, or a store with no stations at all,
// reports ErrDataUnavailable.
func LoadGraph(source ScheduleSource, cfg journeygraph.Config) (*journeygraph.Graph, journeygraph.BuildReport, error) {
	stations, err := source.Stations()
	if err != nil {
		return nil, journeygraph.BuildReport{}, fmt.Errorf("%w: loading stations: %v", ErrDataUnavailable, err)
	}
	if len(stations) == 0 {
		return nil, journeygraph.BuildReport{}, fmt.Errorf("%w: store contains no stations", ErrDataUnavailable)
	}

	travel, err := source.TravelSegments()
	if err != nil {
		return nil, journeygraph.BuildReport{}, fmt.Errorf("%w: loading travel segments: %v", ErrDataUnavailable, err)
	}

	transfers, err := source.TransferLinks()
	if err != nil {
		return nil, journeygraph.BuildReport{}, fmt.Errorf("%w: loading transfer links: %v", ErrDataUnavailable, err)
	}

	graph, report := journeygraph.Build(cfg, stations, travel, transfers)

	log.Info().
		Int("stations", report.Stations).
		Int("traveledges", report.TravelEdges).
		Int("transferedges", report.TransferEdges).
		Int("malformed", report.MalformedRecords).
		Int("dangling", report.DanglingEdges).
		Int("overwritten", report.OverwrittenEdges).
		Msg("Built network graph")

	return graph, report, nil
}

// NewSessionPlanner is the common setup path: load the graph and wire the
// haversine heuristic over it.
func NewSessionPlanner(source ScheduleSource, cfg journeygraph.Config) (*Planner, error) {
	graph, _, err := LoadGraph(source, cfg)
	if err != nil {
		return nil, err
	}

	return NewPlanner(graph, journeygraph.NewHaversineHeuristic(cfg, graph)), nil
}
