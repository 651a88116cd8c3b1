package analytics

import (
	"sort"

	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/pkg/utils"
)

// Breakdown counts the distinct values of a categorical column and
// derives each value's percentage of the total, rounded to one decimal.
// Output is ordered by count descending, ties in first-seen order.
func Breakdown(trips []domain.TripRecord, key func(domain.TripRecord) string) []domain.CategoryCount {
	counts := make(map[string]int)
	var order []string
	for _, t := range trips {
		v := key(t)
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	total := len(trips)
	breakdown := make([]domain.CategoryCount, len(order))
	for i, v := range order {
		breakdown[i] = domain.CategoryCount{
			Value:   v,
			Count:   counts[v],
			Percent: percent(counts[v], total),
		}
	}
	return breakdown
}

// UserType and BikeType are the breakdown keys used by the
// user-analysis view
func UserType(t domain.TripRecord) string { return t.MemberCasual }
func BikeType(t domain.TripRecord) string { return t.RideableType }

// CountOf returns the count for a category value, zero when the value
// is absent from the breakdown
func CountOf(breakdown []domain.CategoryCount, value string) int {
	for _, c := range breakdown {
		if c.Value == value {
			return c.Count
		}
	}
	return 0
}

// PercentOf returns the percentage for a category value, zero when absent
func PercentOf(breakdown []domain.CategoryCount, value string) float64 {
	for _, c := range breakdown {
		if c.Value == value {
			return c.Percent
		}
	}
	return 0
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return utils.RoundTo(100*float64(count)/float64(total), 1)
}
