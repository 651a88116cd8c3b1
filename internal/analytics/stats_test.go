package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.InDelta(t, 27.5, Mean([]float64{5, 50}), 1e-9)
	assert.Zero(t, Mean(nil))
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd length", []float64{9, 1, 5}, 5},
		{"even length", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Median(tt.values), 1e-9)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestMinMax(t *testing.T) {
	values := []float64{4, -2, 9, 0}
	assert.Equal(t, -2.0, Min(values))
	assert.Equal(t, 9.0, Max(values))
	assert.Zero(t, Min(nil))
	assert.Zero(t, Max(nil))
}
