// SPDX-License-Identifier: MIT
// Package: ivivc/deconv
//
// point_area.go — numerical deconvolution against a unit impulse response.
//
// The input rate is piecewise constant on (tᵢ₋₁, tᵢ] (with t₋₁ = 0), so
//
//   C(tᵢ) = Σⱼ≤ᵢ rⱼ · ∫ h(tᵢ − s) ds   over (tⱼ₋₁, tⱼ]
//
// is lower triangular in r and is solved forward. The weights are
// integrated with the trapezoidal rule on subSteps sub-intervals. A sample
// at t = 0 closes an empty interval and gets rate 0.

package deconv

import (
	"math"

	"gonum.org/v1/gonum/integrate"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/model"
	"github.com/katalvlaran/ivivc/series"
)

const subSteps = 16

// InputProfile is the point-area output.
type InputProfile struct {
	Rate     series.TimeSeries `json:"rate"`   // input rate on (tᵢ₋₁, tᵢ], amount per time unit
	Amount   series.TimeSeries `json:"amount"` // cumulative amount absorbed at tᵢ
	Fa       series.TimeSeries `json:"fa"`     // Amount normalised by its last value
	Warnings []diag.Warning    `json:"warnings,omitempty"`
}

// Monotone reports whether no negative input rate was found.
func (p InputProfile) Monotone() bool {
	return !diag.Has(p.Warnings, diag.NonMonotonicAbsorption)
}

// PointArea recovers the input rate of c given the unit impulse response h
// (concentration per unit amount, e.g. model.NewImpulseResponse). Unlike
// WagnerNelson it makes no compartmental assumption beyond linearity; Fa is
// normalised to the last cumulative amount, so it reaches 1 at tlast.
//
// Negative rates are kept and reported as one NonMonotonicAbsorption
// warning.
//
// Complexity: O(n²·subSteps) evaluations of h, O(n) memory.
func PointArea(c series.TimeSeries, h model.Curve, opts ...Option) (InputProfile, error) {
	const op = "deconv.PointArea"
	cfg := newConfig(opts...)
	fail := func(err error) (InputProfile, error) {
		if cfg.subject != "" {
			err = diag.WithSubject(op, cfg.subject, err)
		}

		return InputProfile{}, err
	}

	n := c.Len()
	if n < MinPoints {
		return fail(diag.Errorf(op, diag.ErrInsufficientData, "need ≥ %d points, got %d", MinPoints, n))
	}
	if h == nil {
		return fail(diag.ParamError(op, "h", diag.ErrDomain, "nil impulse response"))
	}
	ts, cs := c.Times(), c.Values()
	if ts[0] < 0 {
		return fail(diag.Errorf(op, diag.ErrDomain, "first sample at t=%g precedes the dose", ts[0]))
	}

	lo := make([]float64, n)
	for i := 1; i < n; i++ {
		lo[i] = ts[i-1]
	}

	rate := make([]float64, n)
	for i := 0; i < n; i++ {
		if ts[i] == lo[i] {
			continue
		}
		var acc float64
		for j := 0; j < i; j++ {
			if rate[j] != 0 {
				acc += rate[j] * weight(h, ts[i], lo[j], ts[j])
			}
		}
		w := weight(h, ts[i], lo[i], ts[i])
		if !(w > 0) || math.IsInf(w, 0) {
			return fail(diag.Errorf(op, diag.ErrDomain, "impulse response weight %g on (%g, %g]", w, lo[i], ts[i]))
		}
		rate[i] = (cs[i] - acc) / w
	}

	amount := make([]float64, n)
	var sum float64
	for i := range rate {
		sum += rate[i] * (ts[i] - lo[i])
		amount[i] = sum
	}
	if !(amount[n-1] > 0) {
		return fail(diag.Errorf(op, diag.ErrDomain, "no net input: cumulative amount %g", amount[n-1]))
	}
	fa := make([]float64, n)
	for i := range amount {
		fa[i] = amount[i] / amount[n-1]
	}

	var out InputProfile
	var (
		drops int
		first = -1
	)
	for i, r := range rate {
		if r < -cfg.tol {
			if first < 0 {
				first = i
			}
			drops++
		}
	}
	if drops > 0 {
		out.Warnings = append(out.Warnings, diag.Warnf(diag.NonMonotonicAbsorption, cfg.subject,
			"negative input rate %g on (%g, %g]; %d interval(s) beyond tol %g",
			rate[first], lo[first], ts[first], drops, cfg.tol))
	}

	var err error
	if out.Rate, err = series.New(ts, rate, c.Unit()); err != nil {
		return fail(err)
	}
	if out.Amount, err = series.New(ts, amount, c.Unit()); err != nil {
		return fail(err)
	}
	if out.Fa, err = series.New(ts, fa, c.Unit()); err != nil {
		return fail(err)
	}

	return out, nil
}

// weight is ∫ h(t − s) ds over (a, b].
func weight(h model.Curve, t, a, b float64) float64 {
	xs := make([]float64, subSteps+1)
	fs := make([]float64, subSteps+1)
	d := (b - a) / subSteps
	for k := range xs {
		xs[k] = a + float64(k)*d
		fs[k] = h.At(t - xs[k])
	}
	xs[subSteps] = b

	return integrate.Trapezoidal(xs, fs)
}
