// Package analytics implements the aggregation pipeline: pure transforms
// from raw trip records to the derived tables the dashboard views render.
package analytics

import "github.com/bikeshare/backend/internal/domain"

// Window is a closed inclusion interval over trip durations in minutes.
// Records outside it are silently excluded before aggregation.
type Window struct {
	Low  float64
	High float64
}

// Standing outlier-exclusion policies. The bounds are a product decision
// (drop false starts under a minute and multi-hour anomalies), and the
// two views deliberately keep their historical, differing upper bounds.
var (
	TrendWindow        = Window{Low: 1, High: 120}
	DistributionWindow = Window{Low: 1, High: 60}
)

// Contains reports whether v lies inside the closed interval
func (w Window) Contains(v float64) bool {
	return v >= w.Low && v <= w.High
}

// FilterByDuration retains trips whose duration lies inside the window.
// Both bounds are inclusive.
func FilterByDuration(trips []domain.TripRecord, w Window) []domain.TripRecord {
	filtered := make([]domain.TripRecord, 0, len(trips))
	for _, t := range trips {
		if w.Contains(t.DurationMinutes()) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// Durations returns the per-trip duration column in minutes
func Durations(trips []domain.TripRecord) []float64 {
	values := make([]float64, len(trips))
	for i, t := range trips {
		values[i] = t.DurationMinutes()
	}
	return values
}
