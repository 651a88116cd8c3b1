package analytics

import (
	"sort"

	"github.com/bikeshare/backend/internal/domain"
)

// AggregateDaily groups trips by the calendar date of their start
// timestamp and yields ride count plus mean duration per day, ordered
// by date ascending. Days with zero qualifying rides are absent from
// the output, so a time series plotted from it shows gaps, not zeros.
func AggregateDaily(trips []domain.TripRecord) []domain.DailyAggregate {
	type acc struct {
		rides       int
		sumDuration float64
	}

	byDate := make(map[string]*acc)
	for _, t := range trips {
		date := t.StartDate()
		a, ok := byDate[date]
		if !ok {
			a = &acc{}
			byDate[date] = a
		}
		a.rides++
		a.sumDuration += t.DurationMinutes()
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	daily := make([]domain.DailyAggregate, 0, len(dates))
	for _, date := range dates {
		a := byDate[date]
		daily = append(daily, domain.DailyAggregate{
			Date:           date,
			Rides:          a.rides,
			AvgDurationMin: a.sumDuration / float64(a.rides),
		})
	}
	return daily
}
