package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuantileLinearInterpolation(t *testing.T) {
	asc := []float64{1, 2, 3, 4}
	tests := []struct {
		q    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		got, ok := quantile(asc, tt.q)
		assert.True(t, ok)
		assert.InDelta(t, tt.want, got, 1e-9, "q=%v", tt.q)
	}

	_, ok := quantile(nil, 0.5)
	assert.False(t, ok)
}

func TestMeanMedian(t *testing.T) {
	m, ok := mean([]float64{1, 2, 6})
	assert.True(t, ok)
	assert.Equal(t, 3.0, m)

	med, ok := median([]float64{9, 1, 5})
	assert.True(t, ok)
	assert.Equal(t, 5.0, med)

	med, _ = median([]float64{4, 1, 3, 2})
	assert.Equal(t, 2.5, med)

	_, ok = mean(nil)
	assert.False(t, ok)
}

func TestRound(t *testing.T) {
	assert.Equal(t, 66.7, round(200.0/3.0, 1))
	assert.Equal(t, 0.13, round(0.125, 2), "halves round away from zero")
	assert.Equal(t, -0.13, round(-0.125, 2))
	assert.Equal(t, 100.0, round(100, 1))
}
