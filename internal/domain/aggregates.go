package domain

import "time"

// DailyAggregate holds ride count and mean duration for one calendar day
type DailyAggregate struct {
	Date           string  `json:"date"` // YYYY-MM-DD
	Rides          int     `json:"rides"`
	AvgDurationMin float64 `json:"avg_duration_min"`
}

// StationCount pairs a station name with its ride count
type StationCount struct {
	Station string `json:"station"`
	Rides   int    `json:"rides"`
}

// StationPoint is one unique (station, lat, lng) location with its ride count,
// suitable for a scatter map layer
type StationPoint struct {
	Station string  `json:"station"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Rides   int     `json:"rides"`
}

// CategoryCount holds the count and share of one categorical value
type CategoryCount struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// DurationBin is one histogram bin over trip durations.
// Labels are interval strings like "[1.00, 3.95)"; the last bin is closed.
type DurationBin struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MapViewport describes the bounding box and center of the station scatter,
// so the map view can position itself without seeing raw rows
type MapViewport struct {
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
	MinLat    float64 `json:"min_lat"`
	MinLng    float64 `json:"min_lng"`
	MaxLat    float64 `json:"max_lat"`
	MaxLng    float64 `json:"max_lng"`
	SpanKm    float64 `json:"span_km"` // bounding-box diagonal, for zoom selection
}

// OverviewPayload is the landing-view summary
type OverviewPayload struct {
	TotalRides          int          `json:"total_rides"`
	UniqueStartStations int          `json:"unique_start_stations"`
	FirstStartedAt      time.Time    `json:"first_started_at"`
	LastStartedAt       time.Time    `json:"last_started_at"`
	Preview             []TripRecord `json:"preview"`
}

// DailyTrendsPayload carries the daily time series plus its summary metrics.
// Days with no qualifying rides are absent, so charts will show gaps.
type DailyTrendsPayload struct {
	Daily              []DailyAggregate `json:"daily"`
	AvgDailyRides      float64          `json:"avg_daily_rides"`
	PeakDayRides       int              `json:"peak_day_rides"`
	AvgDurationMin     float64          `json:"avg_duration_min"`
	LongestAvgDuration float64          `json:"longest_avg_duration_min"`
}

// PopularStationsPayload holds the start and end station rankings
type PopularStationsPayload struct {
	StartStations []StationCount `json:"start_stations"`
	EndStations   []StationCount `json:"end_stations"`
}

// StationMapPayload holds the geographic scatter and its viewport
type StationMapPayload struct {
	Points   []StationPoint `json:"points"`
	Viewport MapViewport    `json:"viewport"`
}

// UserAnalysisPayload combines the categorical breakdowns with the
// duration distribution
type UserAnalysisPayload struct {
	UserTypes         []CategoryCount `json:"user_types"`
	MemberRides       int             `json:"member_rides"`
	CasualRides       int             `json:"casual_rides"`
	MemberPercent     float64         `json:"member_percent"`
	BikeTypes         []CategoryCount `json:"bike_types"`
	ClassicRides      int             `json:"classic_rides"`
	ElectricRides     int             `json:"electric_rides"`
	ElectricPercent   float64         `json:"electric_percent"`
	DurationHistogram []DurationBin   `json:"duration_histogram"`
	AvgDurationMin    float64         `json:"avg_duration_min"`
	MedianDurationMin float64         `json:"median_duration_min"`
}

// DashboardPayload aggregates every view into a single response
type DashboardPayload struct {
	Overview  OverviewPayload        `json:"overview"`
	Trends    DailyTrendsPayload     `json:"trends"`
	Stations  PopularStationsPayload `json:"stations"`
	Users     UserAnalysisPayload    `json:"users"`
	Timestamp time.Time              `json:"timestamp"`
}
