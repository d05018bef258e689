package journeygraph

// Config carries the planner constants that used to be hardcoded per session.
// Each session gets its own copy so varying them never leaks across sessions.
type Config struct {
	EarthRadiusMetres      float64
	CruisingSpeedMPS       float64
	DefaultTransferSeconds int
}

func DefaultConfig() Config {
	return Config{
		EarthRadiusMetres:      6371000,
		CruisingSpeedMPS:       10,
		DefaultTransferSeconds: 180,
	}
}

// StationRecord is a stop row from the schedule store. Coordinates are
// pointers as the feed may omit them entirely.
type StationRecord struct {
	ID        string
	Name      string
	Latitude  *float64
	Longitude *float64
}

// TravelRecord is a pre-aggregated scheduled segment: the minimum observed
// duration between two stops adjacent on at least one trip, with one of the
// serving routes attached.
type TravelRecord struct {
	From            string
	To              string
	DurationSeconds int
	Route           string
}

// TransferRecord is an out-of-vehicle link between two stops. MinSeconds of
// zero or below means the feed gave no usable value and the configured
// default applies.
type TransferRecord struct {
	From       string
	To         string
	MinSeconds int
}

// BuildReport counts what the builder kept and what it dropped, so skipped
// records stay observable without aborting the build.
type BuildReport struct {
	Stations      int
	TravelEdges   int
	TransferEdges int

	MalformedRecords int
	DanglingEdges    int
	SelfLoops        int
	OverwrittenEdges int
}

// Build assembles the network graph from the three schedule store record
// sets. All travel edges are inserted first, then all transfer edges; when a
// transfer shares an ordered pair with a travel edge the transfer wins,
// replacing the travel edge outright. That precedence is a carried-over quirk
// of the insertion order, not something downstream code should rely on.
func Build(cfg Config, stations []StationRecord, travel []TravelRecord, transfers []TransferRecord) (*Graph, BuildReport) {
	graph := newGraph()
	report := BuildReport{}

	for _, record := range stations {
		if record.ID == "" {
			report.MalformedRecords += 1
			continue
		}

		station := &Station{
			ID:   record.ID,
			Name: record.Name,
		}
		if record.Latitude != nil && record.Longitude != nil {
			station.Location = &Location{
				Latitude:  *record.Latitude,
				Longitude: *record.Longitude,
			}
		}

		graph.addStation(station)
		report.Stations += 1
	}

	for _, record := range travel {
		if record.From == "" || record.To == "" || record.DurationSeconds < 0 {
			report.MalformedRecords += 1
			continue
		}
		if !graph.HasStation(record.From) || !graph.HasStation(record.To) {
			report.DanglingEdges += 1
			continue
		}

		replaced := graph.setEdge(Edge{
			From:   record.From,
			To:     record.To,
			Kind:   EdgeKindTravel,
			Weight: record.DurationSeconds,
			Route:  record.Route,
		})
		if replaced {
			report.OverwrittenEdges += 1
		}
		report.TravelEdges += 1
	}

	for _, record := range transfers {
		if record.From == "" || record.To == "" {
			report.MalformedRecords += 1
			continue
		}
		if record.From == record.To {
			report.SelfLoops += 1
			continue
		}
		if !graph.HasStation(record.From) || !graph.HasStation(record.To) {
			report.DanglingEdges += 1
			continue
		}

		weight := record.MinSeconds
		if weight <= 0 {
			weight = cfg.DefaultTransferSeconds
		}

		replaced := graph.setEdge(Edge{
			From:   record.From,
			To:     record.To,
			Kind:   EdgeKindTransfer,
			Weight: weight,
		})
		if replaced {
			report.OverwrittenEdges += 1
		}
		report.TransferEdges += 1
	}

	return graph, report
}
