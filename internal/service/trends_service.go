package service

import (
	"context"

	"github.com/bikeshare/backend/internal/analytics"
	"github.com/bikeshare/backend/internal/dataset"
	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/pkg/utils"
)

// TrendsService computes the daily ride trend view
type TrendsService struct {
	store *dataset.Store
}

// NewTrendsService creates a new trends service
func NewTrendsService(store *dataset.Store) *TrendsService {
	return &TrendsService{store: store}
}

// GetDailyTrends filters trips to the trend inclusion window, aggregates
// them per day and derives the summary metrics shown next to the chart
func (s *TrendsService) GetDailyTrends(ctx context.Context) (domain.DailyTrendsPayload, error) {
	trips, err := s.store.Records(ctx)
	if err != nil {
		return domain.DailyTrendsPayload{}, err
	}

	filtered := analytics.FilterByDuration(trips, analytics.TrendWindow)
	daily := analytics.AggregateDaily(filtered)

	payload := domain.DailyTrendsPayload{Daily: daily}
	if len(daily) == 0 {
		return payload, nil
	}

	rides := make([]float64, len(daily))
	durations := make([]float64, len(daily))
	for i, d := range daily {
		rides[i] = float64(d.Rides)
		durations[i] = d.AvgDurationMin
	}

	payload.AvgDailyRides = utils.RoundTo(analytics.Mean(rides), 1)
	payload.PeakDayRides = int(analytics.Max(rides))
	payload.AvgDurationMin = utils.RoundTo(analytics.Mean(durations), 1)
	payload.LongestAvgDuration = utils.RoundTo(analytics.Max(durations), 1)

	return payload, nil
}
