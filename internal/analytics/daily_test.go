package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bikeshare/backend/internal/domain"
)

func TestAggregateDaily(t *testing.T) {
	day1 := time.Date(2022, 1, 10, 8, 0, 0, 0, time.UTC)
	day2 := time.Date(2022, 1, 12, 18, 0, 0, 0, time.UTC)
	trips := []domain.TripRecord{
		tripAt(day2, 30),
		tripAt(day1, 10),
		tripAt(day1, 20),
		tripAt(day2.Add(time.Hour), 40),
	}

	daily := AggregateDaily(trips)

	require.Len(t, daily, 2)
	assert.Equal(t, "2022-01-10", daily[0].Date)
	assert.Equal(t, 2, daily[0].Rides)
	assert.InDelta(t, 15.0, daily[0].AvgDurationMin, 1e-9)
	assert.Equal(t, "2022-01-12", daily[1].Date)
	assert.Equal(t, 2, daily[1].Rides)
	assert.InDelta(t, 35.0, daily[1].AvgDurationMin, 1e-9)

	// Jan 11 had no rides and must be absent, not zero
	for _, d := range daily {
		assert.NotEqual(t, "2022-01-11", d.Date)
	}
}

func TestAggregateDailyCountConservation(t *testing.T) {
	start := time.Date(2022, 1, 1, 12, 0, 0, 0, time.UTC)
	var trips []domain.TripRecord
	for i := 0; i < 50; i++ {
		trips = append(trips, tripAt(start.AddDate(0, 0, i%7), float64(5+i)))
	}
	filtered := FilterByDuration(trips, TrendWindow)

	daily := AggregateDaily(filtered)

	total := 0
	for _, d := range daily {
		total += d.Rides
	}
	assert.Equal(t, len(filtered), total)

	// Dates strictly ascending, no duplicates
	for i := 1; i < len(daily); i++ {
		assert.Less(t, daily[i-1].Date, daily[i].Date)
	}
}

func TestAggregateDailyFilteredScenario(t *testing.T) {
	// Three rides on one date with durations {5, 50, 130}: the 130-minute
	// ride falls outside the trend window, leaving count=2 mean=27.5
	day := time.Date(2022, 1, 15, 9, 0, 0, 0, time.UTC)
	trips := []domain.TripRecord{
		tripAt(day, 5),
		tripAt(day.Add(time.Hour), 50),
		tripAt(day.Add(2*time.Hour), 130),
	}

	daily := AggregateDaily(FilterByDuration(trips, TrendWindow))

	require.Len(t, daily, 1)
	assert.Equal(t, "2022-01-15", daily[0].Date)
	assert.Equal(t, 2, daily[0].Rides)
	assert.InDelta(t, 27.5, daily[0].AvgDurationMin, 1e-9)
}

func TestAggregateDailyEmpty(t *testing.T) {
	assert.Empty(t, AggregateDaily(nil))
}
