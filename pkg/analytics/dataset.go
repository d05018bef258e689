package analytics

import (
	"io"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/transito/transito/pkg/schedulestore"
	"github.com/transito/transito/pkg/util"
)

// SegmentSample is one row of the travel-time training dataset consumed by
// the offline regression trainer. Categorical identifiers are integer-encoded
// since the trainer can't take raw strings.
type SegmentSample struct {
	RouteEncoded int `csv:"route_encoded"`
	DirectionID  int `csv:"direction_id"`
	StartTimeSec int `csv:"start_time_sec"`
	FromEncoded  int `csv:"from_encoded"`
	ToEncoded    int `csv:"to_encoded"`
	DurationSec  int `csv:"duration_sec"`
}

// maxSegmentDuration filters out segments over an hour, which are schedule
// artefacts rather than plausible single-segment runs.
const maxSegmentDuration = 3600

// BuildDataset turns raw trip segments into training samples. Route and stop
// labels are encoded over the sorted set of distinct values (stops over the
// union of both endpoints), so the same snapshot always encodes identically.
func BuildDataset(segments []schedulestore.TripSegment) []SegmentSample {
	util.InPlaceFilter(&segments, func(segment schedulestore.TripSegment) bool {
		return segment.DurationSec > 0 && segment.DurationSec < maxSegmentDuration
	})

	var routes []string
	var stops []string
	for _, segment := range segments {
		routes = append(routes, segment.RouteID)
		stops = append(stops, segment.FromStopID, segment.ToStopID)
	}

	routeEncoding := encodeLabels(routes)
	stopEncoding := encodeLabels(stops)

	samples := make([]SegmentSample, 0, len(segments))
	for _, segment := range segments {
		samples = append(samples, SegmentSample{
			RouteEncoded: routeEncoding[segment.RouteID],
			DirectionID:  segment.DirectionID,
			StartTimeSec: segment.StartTimeSec,
			FromEncoded:  stopEncoding[segment.FromStopID],
			ToEncoded:    stopEncoding[segment.ToStopID],
			DurationSec:  segment.DurationSec,
		})
	}

	return samples
}

func encodeLabels(values []string) map[string]int {
	unique := util.RemoveDuplicateStrings(values, nil)
	sort.Strings(unique)

	encoding := make(map[string]int, len(unique))
	for index, value := range unique {
		encoding[value] = index
	}

	return encoding
}

// WriteCSV writes the dataset in the layout the offline trainer expects.
func WriteCSV(writer io.Writer, samples []SegmentSample) error {
	return gocsv.Marshal(samples, writer)
}
