package correlation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	cases := []struct {
		name       string
		x, y       []float64
		slope, b0  float64
		r2         float64
		wantStdErr bool
	}{
		{"Exact", []float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 2, 1, 1, true},
		{"TwoPoints", []float64{1, 2}, []float64{5, 3}, -2, 7, 1, false},
		{"FlatResponse", []float64{1, 2, 3}, []float64{4, 4, 4}, 0, 4, 1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l, err := correlation.Fit(tc.x, tc.y)
			require.NoError(t, err)
			assert.InDelta(t, tc.slope, l.Slope, 1e-12)
			assert.InDelta(t, tc.b0, l.Intercept, 1e-12)
			assert.InDelta(t, tc.r2, l.R2, 1e-12)
			assert.Equal(t, len(tc.x), l.N)
			assert.False(t, math.IsNaN(l.StdErr))
			if !tc.wantStdErr {
				assert.Equal(t, 0.0, l.StdErr)
			}
		})
	}
}

func TestFit_Noisy(t *testing.T) {
	l, err := correlation.Fit([]float64{0, 1, 2, 3, 4}, []float64{0.1, 0.9, 2.2, 2.8, 4.1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, l.Slope, 0.1)
	assert.Greater(t, l.R2, 0.95)
	assert.Less(t, l.R2, 1.0)
	assert.Greater(t, l.StdErr, 0.0)
	assert.InDelta(t, l.Intercept+2*l.Slope, l.Predict(2), 1e-15)
}

func TestFit_Errors(t *testing.T) {
	_, err := correlation.Fit([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, diag.ErrInsufficientData)

	_, err = correlation.Fit([]float64{2, 2, 2}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, diag.ErrDomain, "zero predictor variance")

	_, err = correlation.Fit([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, diag.ErrDomain)

	_, err = correlation.Fit([]float64{1, math.NaN()}, []float64{1, 2})
	assert.ErrorIs(t, err, diag.ErrDomain)
}
