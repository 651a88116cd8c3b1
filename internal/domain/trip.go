package domain

import (
	"encoding/json"
	"math"
	"time"
)

// User categories as they appear in the member_casual column
const (
	UserMember = "member"
	UserCasual = "casual"
)

// Vehicle categories as they appear in the rideable_type column
const (
	BikeClassic  = "classic_bike"
	BikeElectric = "electric_bike"
)

// TripRecord represents a single bike rental event
type TripRecord struct {
	RideID           string    `json:"ride_id"`
	RideableType     string    `json:"rideable_type"`
	StartedAt        time.Time `json:"started_at"`
	EndedAt          time.Time `json:"ended_at"`
	StartStationName string    `json:"start_station_name"`
	EndStationName   string    `json:"end_station_name"`
	StartLat         float64   `json:"start_lat"`
	StartLng         float64   `json:"start_lng"`
	EndLat           float64   `json:"end_lat"`
	EndLng           float64   `json:"end_lng"`
	MemberCasual     string    `json:"member_casual"`
}

// DurationMinutes returns the trip duration in minutes.
// Computed on demand, never stored with the record.
func (t TripRecord) DurationMinutes() float64 {
	return t.EndedAt.Sub(t.StartedAt).Seconds() / 60
}

// StartDate returns the calendar date of the trip start in YYYY-MM-DD form
func (t TripRecord) StartDate() string {
	return t.StartedAt.Format("2006-01-02")
}

// MarshalJSON encodes NaN coordinates as null. Blank cells in the source
// parse to NaN, which encoding/json cannot represent.
func (t TripRecord) MarshalJSON() ([]byte, error) {
	type alias TripRecord
	return json.Marshal(struct {
		alias
		StartLat *float64 `json:"start_lat"`
		StartLng *float64 `json:"start_lng"`
		EndLat   *float64 `json:"end_lat"`
		EndLng   *float64 `json:"end_lng"`
	}{
		alias:    alias(t),
		StartLat: coordOrNil(t.StartLat),
		StartLng: coordOrNil(t.StartLng),
		EndLat:   coordOrNil(t.EndLat),
		EndLng:   coordOrNil(t.EndLng),
	})
}

func coordOrNil(v float64) *float64 {
	if math.IsNaN(v) {
		return nil
	}
	return &v
}
