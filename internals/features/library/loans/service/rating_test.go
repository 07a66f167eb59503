package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	service "pustakaku_backend/internals/features/library/loans/service"
)

func TestComputeAverage(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		want   float64
	}{
		{"no scores gives unrated sentinel", nil, -1},
		{"empty slice gives unrated sentinel", []float64{}, -1},
		{"single zero score is a real zero, not unrated", []float64{0}, 0},
		{"two scores", []float64{5, 4}, 4.5},
		{"repeating decimal rounds to 2 places", []float64{5, 4, 4}, 4.33},
		{"max scores stay at 10", []float64{10, 10, 10}, 10},
		{"fractional scores", []float64{7.25, 6.75}, 7},
		{"rounds up at the third decimal", []float64{4.33, 4.34, 4.34}, 4.34},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, service.ComputeAverage(tt.scores), 1e-9)
		})
	}
}

func TestComputeAverageIsPure(t *testing.T) {
	scores := []float64{5, 4}
	_ = service.ComputeAverage(scores)
	assert.Equal(t, []float64{5, 4}, scores)
}
