package dataimporter

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/transito/transito/pkg/dataimporter/gtfs"
	"github.com/transito/transito/pkg/schedulestore"
)

// Importer turns a parsed feed into a fresh schedule store snapshot.
type Importer struct {
	store *schedulestore.Store
}

func NewImporter(store *schedulestore.Store) *Importer {
	return &Importer{store: store}
}

// ImportFile parses the zipped feed at path, loads each normalized table and
// rebuilds the derived trip segments.
func (i *Importer) ImportFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening feed file: %w", err)
	}
	defer file.Close()

	schedule := gtfs.Schedule{}
	if err := schedule.ParseFile(file); err != nil {
		return fmt.Errorf("parsing feed file: %w", err)
	}

	reportDataQuality(&schedule)

	if err := i.store.Migrate(); err != nil {
		return fmt.Errorf("migrating schedule tables: %w", err)
	}

	if err := i.importSchedule(&schedule); err != nil {
		return err
	}

	return i.store.BuildTripSegments()
}

func (i *Importer) importSchedule(schedule *gtfs.Schedule) error {
	stops := make([]schedulestore.Stop, 0, len(schedule.Stops))
	for _, stop := range schedule.Stops {
		stops = append(stops, schedulestore.Stop{
			StopID:  stop.ID,
			Name:    stop.Name,
			Lat:     stop.Latitude,
			Lon:     stop.Longitude,
			ZoneID:  stop.ZoneID,
			Parent:  stop.Parent,
			LocType: stop.Type,
		})
	}
	if err := schedulestore.Replace(i.store, stops); err != nil {
		return fmt.Errorf("importing stops: %w", err)
	}
	log.Info().Int("length", len(stops)).Msg("Imported stops")

	routes := make([]schedulestore.Route, 0, len(schedule.Routes))
	for _, route := range schedule.Routes {
		routes = append(routes, schedulestore.Route{
			RouteID:   route.ID,
			AgencyID:  route.AgencyID,
			ShortName: route.ShortName,
			LongName:  route.LongName,
			RouteType: route.Type,
		})
	}
	if err := schedulestore.Replace(i.store, routes); err != nil {
		return fmt.Errorf("importing routes: %w", err)
	}
	log.Info().Int("length", len(routes)).Msg("Imported routes")

	trips := make([]schedulestore.Trip, 0, len(schedule.Trips))
	for _, trip := range schedule.Trips {
		trips = append(trips, schedulestore.Trip{
			TripID:      trip.ID,
			RouteID:     trip.RouteID,
			ServiceID:   trip.ServiceID,
			Headsign:    trip.Headsign,
			DirectionID: trip.DirectionID,
		})
	}
	if err := schedulestore.Replace(i.store, trips); err != nil {
		return fmt.Errorf("importing trips: %w", err)
	}
	log.Info().Int("length", len(trips)).Msg("Imported trips")

	unparsableTimes := 0
	stopTimes := make([]schedulestore.StopTime, 0, len(schedule.StopTimes))
	for _, stopTime := range schedule.StopTimes {
		record := schedulestore.StopTime{
			TripID:        stopTime.TripID,
			StopID:        stopTime.StopID,
			StopSequence:  stopTime.StopSequence,
			ArrivalTime:   stopTime.ArrivalTime,
			DepartureTime: stopTime.DepartureTime,
		}

		if seconds, err := gtfs.ParseClockTime(stopTime.ArrivalTime); err == nil {
			record.ArrivalTimeSec = &seconds
		} else {
			unparsableTimes += 1
		}
		if seconds, err := gtfs.ParseClockTime(stopTime.DepartureTime); err == nil {
			record.DepartureTimeSec = &seconds
		} else {
			unparsableTimes += 1
		}

		stopTimes = append(stopTimes, record)
	}
	if err := schedulestore.Replace(i.store, stopTimes); err != nil {
		return fmt.Errorf("importing stop times: %w", err)
	}
	log.Info().Int("length", len(stopTimes)).Int("unparsabletimes", unparsableTimes).Msg("Imported stop times")

	calendars := make([]schedulestore.Calendar, 0, len(schedule.Calendars))
	for _, calendar := range schedule.Calendars {
		calendars = append(calendars, schedulestore.Calendar{
			ServiceID: calendar.ServiceID,
			Monday:    calendar.Monday,
			Tuesday:   calendar.Tuesday,
			Wednesday: calendar.Wednesday,
			Thursday:  calendar.Thursday,
			Friday:    calendar.Friday,
			Saturday:  calendar.Saturday,
			Sunday:    calendar.Sunday,
			StartDate: gtfs.NormalizeDate(calendar.Start),
			EndDate:   gtfs.NormalizeDate(calendar.End),
		})
	}
	if err := schedulestore.Replace(i.store, calendars); err != nil {
		return fmt.Errorf("importing calendar: %w", err)
	}
	log.Info().Int("length", len(calendars)).Msg("Imported calendar")

	transfers := make([]schedulestore.Transfer, 0, len(schedule.Transfers))
	for _, transfer := range schedule.Transfers {
		transfers = append(transfers, schedulestore.Transfer{
			FromStopID:      transfer.FromStopID,
			ToStopID:        transfer.ToStopID,
			TransferType:    transfer.TransferType,
			MinTransferTime: transfer.MinTransferTime,
		})
	}
	if err := schedulestore.Replace(i.store, transfers); err != nil {
		return fmt.Errorf("importing transfers: %w", err)
	}
	log.Info().Int("length", len(transfers)).Msg("Imported transfers")

	return nil
}

// reportDataQuality warns when more than 10% of a column's values are
// missing, mirroring the feed cleaning step's diagnostics.
func reportDataQuality(schedule *gtfs.Schedule) {
	warnMissing := func(file string, column string, missing int, total int) {
		if total == 0 {
			return
		}

		percent := float64(missing) / float64(total) * 100
		if percent > 10 {
			log.Warn().
				Str("file", file).
				Str("column", column).
				Float64("percent", percent).
				Msg("Column has a high share of missing values")
		}
	}

	missingLat := 0
	missingLon := 0
	for _, stop := range schedule.Stops {
		if stop.Latitude == nil {
			missingLat += 1
		}
		if stop.Longitude == nil {
			missingLon += 1
		}
	}
	warnMissing("stops.txt", "stop_lat", missingLat, len(schedule.Stops))
	warnMissing("stops.txt", "stop_lon", missingLon, len(schedule.Stops))

	missingArrival := 0
	missingDeparture := 0
	for _, stopTime := range schedule.StopTimes {
		if stopTime.ArrivalTime == "" {
			missingArrival += 1
		}
		if stopTime.DepartureTime == "" {
			missingDeparture += 1
		}
	}
	warnMissing("stop_times.txt", "arrival_time", missingArrival, len(schedule.StopTimes))
	warnMissing("stop_times.txt", "departure_time", missingDeparture, len(schedule.StopTimes))

	missingTransferTime := 0
	for _, transfer := range schedule.Transfers {
		if transfer.MinTransferTime == nil {
			missingTransferTime += 1
		}
	}
	warnMissing("transfers.txt", "min_transfer_time", missingTransferTime, len(schedule.Transfers))
}
