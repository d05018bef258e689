package gtfs

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFeedZip(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()

	var buffer bytes.Buffer
	writer := zip.NewWriter(&buffer)

	for name, contents := range files {
		entry, err := writer.Create(name)
		require.NoError(t, err)
		_, err = entry.Write([]byte(contents))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	return bytes.NewReader(buffer.Bytes())
}

func TestParseFile(t *testing.T) {
	feed := buildFeedZip(t, map[string]string{
		"stops.txt": "stop_id,stop_name,stop_lat,stop_lon\n" +
			"101,Van Cortlandt Park,40.889,-73.898\n" +
			"142,South Ferry,40.702,-74.013\n",
		"routes.txt": "route_id,route_short_name,route_type\n1,1,1\n",
		"trips.txt":  "route_id,service_id,trip_id,direction_id\n1,WKD,trip-1,0\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n" +
			"trip-1,06:00:00,06:00:30,101,1\n" +
			"trip-1,06:02:30,06:03:00,142,2\n",
		"transfers.txt": "from_stop_id,to_stop_id,transfer_type,min_transfer_time\n101,142,2,120\n",
		"shapes.txt":    "shape_id,shape_pt_lat,shape_pt_lon,shape_pt_sequence\nsh,40.1,-74.0,1\n",
	})

	schedule := Schedule{}
	require.NoError(t, schedule.ParseFile(feed))

	require.Len(t, schedule.Stops, 2)
	assert.Equal(t, "101", schedule.Stops[0].ID)
	assert.Equal(t, "Van Cortlandt Park", schedule.Stops[0].Name)
	require.NotNil(t, schedule.Stops[0].Latitude)
	assert.InDelta(t, 40.889, *schedule.Stops[0].Latitude, 0.0001)

	require.Len(t, schedule.Trips, 1)
	assert.Equal(t, "trip-1", schedule.Trips[0].ID)

	require.Len(t, schedule.StopTimes, 2)
	assert.Equal(t, 2, schedule.StopTimes[1].StopSequence)

	require.Len(t, schedule.Transfers, 1)
	require.NotNil(t, schedule.Transfers[0].MinTransferTime)
	assert.Equal(t, 120, *schedule.Transfers[0].MinTransferTime)
}

func TestParseFileMissingColumns(t *testing.T) {
	// Stops lacking the coordinate columns entirely still parse, with nil
	// coordinates.
	feed := buildFeedZip(t, map[string]string{
		"stops.txt": "stop_id,stop_name\n101,Van Cortlandt Park\n",
	})

	schedule := Schedule{}
	require.NoError(t, schedule.ParseFile(feed))

	require.Len(t, schedule.Stops, 1)
	assert.Nil(t, schedule.Stops[0].Latitude)
	assert.Nil(t, schedule.Stops[0].Longitude)
}

func TestParseFileNotAZip(t *testing.T) {
	schedule := Schedule{}
	assert.Error(t, schedule.ParseFile(bytes.NewReader([]byte("not a zip archive"))))
}
