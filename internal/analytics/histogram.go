package analytics

import (
	"fmt"
	"math"

	"github.com/bikeshare/backend/internal/domain"
	"github.com/bikeshare/backend/pkg/utils"
)

// Histogram bins the values into the requested number of equal-width
// bins spanning the observed min/max of the input. Every bin is emitted
// even when empty - unlike the daily aggregator, which omits empty days.
// Labels are half-open intervals "[lo, hi)" except the last bin, which
// closes at the maximum so the largest value is counted.
//
// Empty input yields nil. When all values are equal the bins still span
// a unit width so exactly `bins` entries come back.
func Histogram(values []float64, bins int) []domain.DurationBin {
	if len(values) == 0 || bins <= 0 {
		return nil
	}

	lo := Min(values)
	hi := Max(values)
	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1.0 / float64(bins)
	}

	result := make([]domain.DurationBin, bins)
	for i := range result {
		binLo := lo + width*float64(i)
		binHi := binLo + width
		if i == bins-1 {
			result[i].Label = fmt.Sprintf("[%.2f, %.2f]", binLo, binHi)
		} else {
			result[i].Label = fmt.Sprintf("[%.2f, %.2f)", binLo, binHi)
		}
	}

	for _, v := range values {
		idx := int(utils.Clamp(math.Floor((v-lo)/width), 0, float64(bins-1)))
		result[idx].Count++
	}
	return result
}
