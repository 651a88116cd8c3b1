package domain

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2022, 1, 21, 8, 58, 24, 0, time.UTC)
	trip := TripRecord{StartedAt: start, EndedAt: start.Add(12 * time.Minute)}

	assert.InDelta(t, 12.0, trip.DurationMinutes(), 1e-9)
}

func TestStartDate(t *testing.T) {
	trip := TripRecord{StartedAt: time.Date(2022, 1, 21, 23, 59, 0, 0, time.UTC)}

	assert.Equal(t, "2022-01-21", trip.StartDate())
}

func TestMarshalJSONNaNCoordinates(t *testing.T) {
	start := time.Date(2022, 1, 21, 8, 0, 0, 0, time.UTC)
	trip := TripRecord{
		RideID:    "R1",
		StartedAt: start,
		EndedAt:   start.Add(time.Minute),
		StartLat:  math.NaN(),
		StartLng:  math.NaN(),
		EndLat:    40.73,
		EndLng:    -73.98,
	}

	data, err := json.Marshal(trip)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Nil(t, decoded["start_lat"])
	assert.Nil(t, decoded["start_lng"])
	assert.InDelta(t, 40.73, decoded["end_lat"].(float64), 1e-9)
}
