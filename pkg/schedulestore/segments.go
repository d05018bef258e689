package schedulestore

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// buildTripSegmentsQuery links each stop of a trip to the next one in its
// stop sequence with a LEAD window, yielding one row per scheduled segment
// with its duration. The final stop of every trip has no successor and is
// filtered out.
const buildTripSegmentsQuery = `
CREATE TABLE trip_segments AS
WITH ordered_stops AS (
	SELECT
		trip_id,
		stop_id AS from_stop_id,
		departure_time_sec AS start_time_sec,
		stop_sequence,
		LEAD(stop_id) OVER (PARTITION BY trip_id ORDER BY stop_sequence) AS to_stop_id,
		LEAD(arrival_time_sec) OVER (PARTITION BY trip_id ORDER BY stop_sequence) AS end_time_sec
	FROM stop_times
)
SELECT
	os.trip_id,
	os.from_stop_id,
	os.to_stop_id,
	os.start_time_sec,
	os.end_time_sec,
	(os.end_time_sec - os.start_time_sec) AS duration_sec,
	t.route_id,
	t.service_id,
	t.direction_id
FROM ordered_stops os
JOIN trips t ON os.trip_id = t.trip_id
WHERE os.to_stop_id IS NOT NULL`

// BuildTripSegments rebuilds the derived trip_segments table from the current
// stop_times snapshot.
func (s *Store) BuildTripSegments() error {
	if err := s.db.Exec(`DROP TABLE IF EXISTS trip_segments`).Error; err != nil {
		return fmt.Errorf("dropping trip_segments: %w", err)
	}

	if err := s.db.Exec(buildTripSegmentsQuery).Error; err != nil {
		return fmt.Errorf("building trip_segments: %w", err)
	}

	indexes := []string{
		`CREATE INDEX idx_trip_segments_pair ON trip_segments (from_stop_id, to_stop_id)`,
		`CREATE INDEX idx_trip_segments_trip ON trip_segments (trip_id)`,
	}
	for _, index := range indexes {
		if err := s.db.Exec(index).Error; err != nil {
			return fmt.Errorf("indexing trip_segments: %w", err)
		}
	}

	var count int64
	if err := s.db.Table("trip_segments").Count(&count).Error; err != nil {
		return err
	}

	log.Info().Int64("segments", count).Msg("Rebuilt trip segments")

	return nil
}
