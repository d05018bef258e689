package analytics

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transito/transito/pkg/schedulestore"
)

func sampleSegments() []schedulestore.TripSegment {
	return []schedulestore.TripSegment{
		{TripID: "t1", FromStopID: "101", ToStopID: "102", StartTimeSec: 21600, DurationSec: 150, RouteID: "B", DirectionID: 0},
		{TripID: "t1", FromStopID: "102", ToStopID: "103", StartTimeSec: 21750, DurationSec: 90, RouteID: "A", DirectionID: 0},
		// Outliers: zero, negative and over an hour
		{TripID: "t2", FromStopID: "103", ToStopID: "104", StartTimeSec: 30000, DurationSec: 0, RouteID: "A", DirectionID: 1},
		{TripID: "t2", FromStopID: "104", ToStopID: "105", StartTimeSec: 30100, DurationSec: -30, RouteID: "A", DirectionID: 1},
		{TripID: "t2", FromStopID: "105", ToStopID: "106", StartTimeSec: 30200, DurationSec: 5000, RouteID: "A", DirectionID: 1},
	}
}

func TestBuildDatasetFiltersOutliers(t *testing.T) {
	samples := BuildDataset(sampleSegments())

	require.Len(t, samples, 2)
	assert.Equal(t, 150, samples[0].DurationSec)
	assert.Equal(t, 90, samples[1].DurationSec)
}

func TestBuildDatasetEncodesLabels(t *testing.T) {
	samples := BuildDataset(sampleSegments())
	require.Len(t, samples, 2)

	// Routes sort as A, B; stops as 101, 102, 103.
	assert.Equal(t, 1, samples[0].RouteEncoded)
	assert.Equal(t, 0, samples[1].RouteEncoded)

	assert.Equal(t, 0, samples[0].FromEncoded)
	assert.Equal(t, 1, samples[0].ToEncoded)
	assert.Equal(t, 1, samples[1].FromEncoded)
	assert.Equal(t, 2, samples[1].ToEncoded)
}

func TestBuildDatasetEncodingIsStable(t *testing.T) {
	first := BuildDataset(sampleSegments())
	second := BuildDataset(sampleSegments())

	assert.Equal(t, first, second)
}

func TestWriteCSV(t *testing.T) {
	var buffer bytes.Buffer
	require.NoError(t, WriteCSV(&buffer, BuildDataset(sampleSegments())))

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "route_encoded,direction_id,start_time_sec,from_encoded,to_encoded,duration_sec", lines[0])
	assert.Equal(t, "1,0,21600,0,1,150", lines[1])
}
