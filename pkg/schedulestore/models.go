package schedulestore

// Normalized schedule tables. Column names follow the feed's own field names
// so the raw data stays recognisable in the database.

type Stop struct {
	StopID  string   `gorm:"column:stop_id;primaryKey"`
	Name    string   `gorm:"column:stop_name"`
	Lat     *float64 `gorm:"column:stop_lat"`
	Lon     *float64 `gorm:"column:stop_lon"`
	ZoneID  string   `gorm:"column:zone_id"`
	Parent  string   `gorm:"column:parent_station"`
	LocType int      `gorm:"column:location_type"`
}

func (Stop) TableName() string { return "stops" }

type Route struct {
	RouteID   string `gorm:"column:route_id;primaryKey"`
	AgencyID  string `gorm:"column:agency_id"`
	ShortName string `gorm:"column:route_short_name"`
	LongName  string `gorm:"column:route_long_name"`
	RouteType int    `gorm:"column:route_type"`
}

func (Route) TableName() string { return "routes" }

type Trip struct {
	TripID      string `gorm:"column:trip_id;primaryKey"`
	RouteID     string `gorm:"column:route_id;index"`
	ServiceID   string `gorm:"column:service_id"`
	Headsign    string `gorm:"column:trip_headsign"`
	DirectionID int    `gorm:"column:direction_id"`
}

func (Trip) TableName() string { return "trips" }

type StopTime struct {
	TripID           string `gorm:"column:trip_id;index:idx_trip_seq,priority:1"`
	StopID           string `gorm:"column:stop_id;index"`
	StopSequence     int    `gorm:"column:stop_sequence;index:idx_trip_seq,priority:2"`
	ArrivalTime      string `gorm:"column:arrival_time"`
	DepartureTime    string `gorm:"column:departure_time"`
	ArrivalTimeSec   *int   `gorm:"column:arrival_time_sec"`
	DepartureTimeSec *int   `gorm:"column:departure_time_sec"`
}

func (StopTime) TableName() string { return "stop_times" }

type Calendar struct {
	ServiceID string `gorm:"column:service_id;primaryKey"`
	Monday    int    `gorm:"column:monday"`
	Tuesday   int    `gorm:"column:tuesday"`
	Wednesday int    `gorm:"column:wednesday"`
	Thursday  int    `gorm:"column:thursday"`
	Friday    int    `gorm:"column:friday"`
	Saturday  int    `gorm:"column:saturday"`
	Sunday    int    `gorm:"column:sunday"`
	StartDate string `gorm:"column:start_date"`
	EndDate   string `gorm:"column:end_date"`
}

func (Calendar) TableName() string { return "calendar" }

type Transfer struct {
	FromStopID      string `gorm:"column:from_stop_id;index"`
	ToStopID        string `gorm:"column:to_stop_id"`
	TransferType    int    `gorm:"column:transfer_type"`
	MinTransferTime *int   `gorm:"column:min_transfer_time"`
}

func (Transfer) TableName() string { return "transfers" }

// TripSegment rows are derived, one per consecutive stop pair of a trip, by
// BuildTripSegments. The table is rebuilt on every import rather than
// migrated.
type TripSegment struct {
	TripID       string `gorm:"column:trip_id"`
	FromStopID   string `gorm:"column:from_stop_id"`
	ToStopID     string `gorm:"column:to_stop_id"`
	StartTimeSec int    `gorm:"column:start_time_sec"`
	EndTimeSec   int    `gorm:"column:end_time_sec"`
	DurationSec  int    `gorm:"column:duration_sec"`
	RouteID      string `gorm:"column:route_id"`
	ServiceID    string `gorm:"column:service_id"`
	DirectionID  int    `gorm:"column:direction_id"`
}

func (TripSegment) TableName() string { return "trip_segments" }
