// SPDX-License-Identifier: MIT
// Package: ivivc/series
//
// types.go — TimeSeries value type and constructors.

package series

import (
	"encoding/json"
	"math"

	"github.com/katalvlaran/ivivc/diag"
)

// Unit is the time unit shared by every point of a TimeSeries.
type Unit string

const (
	// Hours is used for oral products.
	Hours Unit = "h"
	// Days is used for depot products.
	Days Unit = "d"
)

// hoursPerDay converts between Hours and Days.
const hoursPerDay = 24.0

// Point is a single (time, value) sample.
type Point struct {
	T float64 `json:"t"`
	V float64 `json:"v"`
}

// TimeSeries is an immutable ordered sequence of points.
// The zero value is an empty series; use New or FromGrid to build one.
type TimeSeries struct {
	t    []float64
	v    []float64
	unit Unit
}

const opNew = "series.New"

// New validates and copies times/values into a TimeSeries.
//
// Errors:
//   - ErrInsufficientData if the series is empty.
//   - ErrDomain on length mismatch, negative/non-finite time, non-increasing
//     time, or non-finite value.
func New(times, values []float64, unit Unit) (TimeSeries, error) {
	if len(times) == 0 {
		return TimeSeries{}, diag.Errorf(opNew, diag.ErrInsufficientData, "empty series")
	}
	if len(times) != len(values) {
		return TimeSeries{}, diag.Errorf(opNew, diag.ErrDomain,
			"len(times)=%d != len(values)=%d", len(times), len(values))
	}
	if err := validateTimes(opNew, times); err != nil {
		return TimeSeries{}, err
	}
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return TimeSeries{}, diag.Errorf(opNew, diag.ErrDomain, "value[%d] is not finite", i)
		}
	}
	if unit == "" {
		unit = Hours
	}

	return TimeSeries{
		t:    append([]float64(nil), times...),
		v:    append([]float64(nil), values...),
		unit: unit,
	}, nil
}

// FromGrid evaluates fn at every grid time, in grid order.
func FromGrid(g Grid, unit Unit, fn func(t float64) float64) (TimeSeries, error) {
	ts := g.Times()
	vs := make([]float64, len(ts))
	for i, t := range ts {
		vs[i] = fn(t)
	}

	return New(ts, vs, unit)
}

// validateTimes checks non-negative, finite, strictly increasing times.
func validateTimes(op string, times []float64) error {
	for i, t := range times {
		if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
			return diag.Errorf(op, diag.ErrDomain, "time[%d]=%g must be finite and ≥ 0", i, t)
		}
		if i > 0 && t <= times[i-1] {
			return diag.Errorf(op, diag.ErrDomain,
				"times must be strictly increasing: time[%d]=%g ≤ time[%d]=%g", i, t, i-1, times[i-1])
		}
	}

	return nil
}

// Len returns the number of points.
func (s TimeSeries) Len() int { return len(s.t) }

// Unit returns the time unit.
func (s TimeSeries) Unit() Unit { return s.unit }

// Times returns a copy of the time axis.
func (s TimeSeries) Times() []float64 { return append([]float64(nil), s.t...) }

// Values returns a copy of the values.
func (s TimeSeries) Values() []float64 { return append([]float64(nil), s.v...) }

// Point returns the i-th point. It panics on an out-of-range index like a
// slice access would.
func (s TimeSeries) Point(i int) Point { return Point{T: s.t[i], V: s.v[i]} }

// Last returns the final point; the series must be non-empty.
func (s TimeSeries) Last() Point { return s.Point(len(s.t) - 1) }

// Points returns a copy of all points.
func (s TimeSeries) Points() []Point {
	out := make([]Point, len(s.t))
	for i := range s.t {
		out[i] = Point{T: s.t[i], V: s.v[i]}
	}

	return out
}

// SameGrid reports whether s and o are sampled at identical times and units.
func (s TimeSeries) SameGrid(o TimeSeries) bool {
	if s.unit != o.unit || len(s.t) != len(o.t) {
		return false
	}
	for i := range s.t {
		if s.t[i] != o.t[i] {
			return false
		}
	}

	return true
}

// Map returns a new series whose values are fn(t, v). Non-finite results are
// rejected with ErrDomain.
func (s TimeSeries) Map(fn func(t, v float64) float64) (TimeSeries, error) {
	vs := make([]float64, len(s.v))
	for i := range s.v {
		vs[i] = fn(s.t[i], s.v[i])
	}

	return New(s.t, vs, s.unit)
}

// Scale returns a new series with every value multiplied by k.
func (s TimeSeries) Scale(k float64) TimeSeries {
	vs := make([]float64, len(s.v))
	for i, v := range s.v {
		vs[i] = v * k
	}

	return TimeSeries{t: append([]float64(nil), s.t...), v: vs, unit: s.unit}
}

// InUnit returns the series re-expressed in unit u (Hours ↔ Days).
func (s TimeSeries) InUnit(u Unit) TimeSeries {
	if u == s.unit {
		return s
	}
	k := 1.0
	switch {
	case s.unit == Hours && u == Days:
		k = 1 / hoursPerDay
	case s.unit == Days && u == Hours:
		k = hoursPerDay
	}
	ts := make([]float64, len(s.t))
	for i, t := range s.t {
		ts[i] = t * k
	}

	return TimeSeries{t: ts, v: append([]float64(nil), s.v...), unit: u}
}

// Interpolate returns the linearly interpolated value at t. Times outside
// [first, last] yield ErrDomain; the engine never extrapolates silently.
func (s TimeSeries) Interpolate(t float64) (float64, error) {
	n := len(s.t)
	if n == 0 {
		return 0, diag.Errorf("series.Interpolate", diag.ErrInsufficientData, "empty series")
	}
	if t < s.t[0] || t > s.t[n-1] {
		return 0, diag.Errorf("series.Interpolate", diag.ErrDomain,
			"t=%g outside [%g, %g]", t, s.t[0], s.t[n-1])
	}
	// binary search for the first index with time ≥ t
	lo, hi := 0, n-1
	for lo < hi {
		mid := (lo + hi) / 2
		if s.t[mid] < t {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if s.t[lo] == t || lo == 0 {
		return s.v[lo], nil
	}
	t0, t1 := s.t[lo-1], s.t[lo]
	v0, v1 := s.v[lo-1], s.v[lo]

	return v0 + (v1-v0)*(t-t0)/(t1-t0), nil
}

// Nearest returns the value of the sample closest in time to t. Ties go to
// the earlier sample.
func (s TimeSeries) Nearest(t float64) (float64, error) {
	if len(s.t) == 0 {
		return 0, diag.Errorf("series.Nearest", diag.ErrInsufficientData, "empty series")
	}
	best, bestD := 0, math.Abs(s.t[0]-t)
	for i := 1; i < len(s.t); i++ {
		if d := math.Abs(s.t[i] - t); d < bestD {
			best, bestD = i, d
		}
	}

	return s.v[best], nil
}

type wireSeries struct {
	Unit   Unit      `json:"unit"`
	Times  []float64 `json:"t"`
	Values []float64 `json:"v"`
}

// MarshalJSON encodes the series as {"unit":..,"t":[..],"v":[..]}.
func (s TimeSeries) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireSeries{Unit: s.unit, Times: s.t, Values: s.v})
}

// UnmarshalJSON decodes and validates the wire form written by MarshalJSON.
func (s *TimeSeries) UnmarshalJSON(b []byte) error {
	var w wireSeries
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	ns, err := New(w.Times, w.Values, w.Unit)
	if err != nil {
		return err
	}
	*s = ns

	return nil
}
