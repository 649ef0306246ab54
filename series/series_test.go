package series_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_Validation covers the constructor's rejection rules.
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		times  []float64
		values []float64
		want   error
	}{
		{"empty", nil, nil, diag.ErrInsufficientData},
		{"length mismatch", []float64{0, 1}, []float64{1}, diag.ErrDomain},
		{"negative time", []float64{-1, 1}, []float64{0, 0}, diag.ErrDomain},
		{"not increasing", []float64{0, 1, 1}, []float64{0, 0, 0}, diag.ErrDomain},
		{"NaN value", []float64{0, 1}, []float64{0, math.NaN()}, diag.ErrDomain},
		{"Inf time", []float64{0, math.Inf(1)}, []float64{0, 0}, diag.ErrDomain},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := series.New(tc.times, tc.values, series.Hours)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestTimeSeries_Immutable ensures neither inputs nor accessors alias storage.
func TestTimeSeries_Immutable(t *testing.T) {
	ts := []float64{0, 1, 2}
	vs := []float64{0, 5, 7}
	s, err := series.New(ts, vs, series.Hours)
	require.NoError(t, err)

	ts[1], vs[1] = 99, 99
	assert.Equal(t, []float64{0, 1, 2}, s.Times())
	assert.Equal(t, []float64{0, 5, 7}, s.Values())

	got := s.Values()
	got[0] = 42
	assert.Equal(t, 0.0, s.Point(0).V)
}

func TestRegularGrid(t *testing.T) {
	g, err := series.Regular(0, 24, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 49, g.Len())
	times := g.Times()
	assert.Equal(t, 0.0, times[0])
	assert.Equal(t, 24.0, times[48])
	assert.Equal(t, 10.5, times[21], "times are start+i·step, no drift")

	// A stop that is not on the grid is excluded.
	g, err = series.Regular(0, 1, 0.3)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0.3, 0.6, 0.9}, g.Times(), 1e-12)

	_, err = series.Regular(0, 1, 0)
	assert.ErrorIs(t, err, diag.ErrDomain)
	_, err = series.Regular(2, 1, 0.1)
	assert.ErrorIs(t, err, diag.ErrDomain)
	_, err = series.Explicit(0, 2, 1)
	assert.ErrorIs(t, err, diag.ErrDomain)
}

func TestInterpolateAndNearest(t *testing.T) {
	s, err := series.New([]float64{0, 2, 4}, []float64{0, 10, 30}, series.Hours)
	require.NoError(t, err)

	v, err := s.Interpolate(3)
	require.NoError(t, err)
	assert.InDelta(t, 20, v, 1e-12)

	v, err = s.Interpolate(0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = s.Interpolate(5)
	assert.ErrorIs(t, err, diag.ErrDomain)

	v, err = s.Nearest(2.9)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
	v, err = s.Nearest(3)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v, "ties resolve to the earlier sample")
}

func TestInUnit(t *testing.T) {
	s, err := series.New([]float64{0, 24, 48}, []float64{1, 2, 3}, series.Hours)
	require.NoError(t, err)

	d := s.InUnit(series.Days)
	assert.Equal(t, series.Days, d.Unit())
	assert.InDeltaSlice(t, []float64{0, 1, 2}, d.Times(), 1e-12)
	assert.InDeltaSlice(t, s.Times(), d.InUnit(series.Hours).Times(), 1e-12)
}

func TestJSONRoundTrip(t *testing.T) {
	s, err := series.New([]float64{0, 1}, []float64{0.5, 0.75}, series.Days)
	require.NoError(t, err)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"unit":"d","t":[0,1],"v":[0.5,0.75]}`, string(b))

	var back series.TimeSeries
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.SameGrid(s))
	assert.Equal(t, s.Values(), back.Values())

	assert.Error(t, json.Unmarshal([]byte(`{"unit":"h","t":[1,0],"v":[0,0]}`), &back))
}
