package gtfs

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Schedule is a parsed snapshot of a zipped schedule feed.
type Schedule struct {
	Stops     []Stop
	Routes    []Route
	Trips     []Trip
	StopTimes []StopTime
	Calendars []Calendar
	Transfers []Transfer
}

// ParseFile reads a zipped feed. The contained files are CSVs despite their
// .txt extension.
func (s *Schedule) ParseFile(reader io.Reader) error {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	fileMap := map[string]interface{}{
		"stops.txt":      &s.Stops,
		"routes.txt":     &s.Routes,
		"trips.txt":      &s.Trips,
		"stop_times.txt": &s.StopTimes,
		"calendar.txt":   &s.Calendars,
		"transfers.txt":  &s.Transfers,
	}

	body, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	archive, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return err
	}

	for _, zipFile := range archive.File {
		fileName := zipFile.Name
		destination, exists := fileMap[fileName]
		if !exists {
			log.Debug().Str("file", fileName).Msg("Skipping unused feed file")
			continue
		}

		log.Info().Str("file", fileName).Msg("Loading file")

		fileReader, err := zipFile.Open()
		if err != nil {
			return err
		}

		err = gocsv.Unmarshal(fileReader, destination)
		fileReader.Close()
		if err != nil {
			log.Error().Str("file", fileName).Err(err).Msg("Failed to parse csv file")
			return err
		}
	}

	return nil
}
