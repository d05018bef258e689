package schedulestore

import (
	"fmt"

	"github.com/transito/transito/pkg/journeygraph"
	"gorm.io/gorm"
)

// Store wraps the relational schedule snapshot. The write side is used by the
// data importer only; the read side is the query surface the planner consumes.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the normalized schedule tables. trip_segments is excluded,
// it is rebuilt from scratch by BuildTripSegments on each import.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Stop{}, &Route{}, &Trip{}, &StopTime{}, &Calendar{}, &Transfer{})
}

// Replace swaps the contents of one schedule table for a new snapshot inside
// a single transaction.
func Replace[T any](s *Store, records []T) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var model T
		if err := tx.Where("1 = 1").Delete(&model).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}

		return tx.CreateInBatches(records, 500).Error
	})
}

// Stations returns every stop as a graph builder station record.
func (s *Store) Stations() ([]journeygraph.StationRecord, error) {
	var stops []Stop
	if err := s.db.Find(&stops).Error; err != nil {
		return nil, fmt.Errorf("querying stops: %w", err)
	}

	records := make([]journeygraph.StationRecord, 0, len(stops))
	for _, stop := range stops {
		records = append(records, journeygraph.StationRecord{
			ID:        stop.StopID,
			Name:      stop.Name,
			Latitude:  stop.Lat,
			Longitude: stop.Lon,
		})
	}

	return records, nil
}

// TravelSegments aggregates trip_segments down to one record per ordered stop
// pair carrying the minimum scheduled duration. When several routes serve the
// same pair the aggregation keeps some serving route, with no guarantee of
// which one.
func (s *Store) TravelSegments() ([]journeygraph.TravelRecord, error) {
	type row struct {
		FromStopID string
		ToStopID   string
		Weight     int
		RouteID    string
	}

	var rows []row
	err := s.db.Raw(`
		SELECT from_stop_id, to_stop_id, MIN(duration_sec) AS weight, MIN(route_id) AS route_id
		FROM trip_segments
		GROUP BY from_stop_id, to_stop_id`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying travel segments: %w", err)
	}

	records := make([]journeygraph.TravelRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, journeygraph.TravelRecord{
			From:            r.FromStopID,
			To:              r.ToStopID,
			DurationSeconds: r.Weight,
			Route:           r.RouteID,
		})
	}

	return records, nil
}

// TransferLinks returns the stored transfer minimums. Missing or non-positive
// minimums come through as 0: the builder substitutes its configured default.
func (s *Store) TransferLinks() ([]journeygraph.TransferRecord, error) {
	type row struct {
		FromStopID string
		ToStopID   string
		MinSeconds int
	}

	var rows []row
	err := s.db.Raw(`
		SELECT from_stop_id, to_stop_id, COALESCE(min_transfer_time, 0) AS min_seconds
		FROM transfers`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("querying transfers: %w", err)
	}

	records := make([]journeygraph.TransferRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, journeygraph.TransferRecord{
			From:       r.FromStopID,
			To:         r.ToStopID,
			MinSeconds: r.MinSeconds,
		})
	}

	return records, nil
}

// TrainingSegments returns the raw derived segments for the analytics export.
func (s *Store) TrainingSegments() ([]TripSegment, error) {
	var segments []TripSegment
	if err := s.db.Find(&segments).Error; err != nil {
		return nil, fmt.Errorf("querying trip segments: %w", err)
	}

	return segments, nil
}
