// SPDX-License-Identifier: MIT
// Package: ivivc/model
//
// dissolution.go — cumulative fraction-released closed forms.
//
// All curves are non-decreasing in t for valid parameters and evaluate
// t ≤ 0 as t = 0.

package model

import (
	"math"

	"github.com/katalvlaran/ivivc/diag"
)

// FirstOrder is F(t) = Fmax·(1 − e^(−k·t)), clipped to [0, Fmax].
type FirstOrder struct {
	p FirstOrderParams
}

// NewFirstOrder validates Fmax ∈ (0,1] and k > 0.
func NewFirstOrder(p FirstOrderParams) (*FirstOrder, error) {
	const op = "model.NewFirstOrder"
	if err := fraction(op, "fmax", p.Fmax, 0, false); err != nil {
		return nil, err
	}
	if err := positive(op, "k", p.K); err != nil {
		return nil, err
	}

	return &FirstOrder{p: p}, nil
}

// Params returns the parameter set.
func (m *FirstOrder) Params() FirstOrderParams { return m.p }

// Name implements Curve.
func (m *FirstOrder) Name() string { return "first-order" }

// At implements Curve.
func (m *FirstOrder) At(t float64) float64 {
	if t <= 0 {
		return 0
	}
	f := m.p.Fmax * (1 - math.Exp(-m.p.K*t))

	return math.Min(math.Max(f, 0), m.p.Fmax)
}

// Eval implements Curve.
func (m *FirstOrder) Eval(ts []float64) []float64 { return evalAll(m.At, ts) }

// T50 returns the time at which half of Fmax is released, ln2/k.
func (m *FirstOrder) T50() float64 { return math.Ln2 / m.p.K }

// Weibull is the Weibull release model with an optional burst phase.
type Weibull struct {
	p WeibullParams
}

// NewWeibull validates Burst ∈ [0,1), Burst ≤ Fmax ≤ 1, τ > 0, β > 0 and
// BurstTau ≥ 0.
func NewWeibull(p WeibullParams) (*Weibull, error) {
	const op = "model.NewWeibull"
	if !finite(p.Burst) || p.Burst < 0 || p.Burst >= 1 {
		return nil, diag.ParamError(op, "burst", diag.ErrDomain, "burst=%g must be in [0, 1)", p.Burst)
	}
	if err := fraction(op, "fmax", p.Fmax, 0, false); err != nil {
		return nil, err
	}
	if p.Fmax < p.Burst {
		return nil, diag.ParamError(op, "fmax", diag.ErrDomain,
			"fmax=%g below burst=%g: total release would exceed the plateau", p.Fmax, p.Burst)
	}
	if err := positive(op, "tau", p.Tau); err != nil {
		return nil, err
	}
	if err := positive(op, "beta", p.Beta); err != nil {
		return nil, err
	}
	if err := nonNegative(op, "burst_tau", p.BurstTau); err != nil {
		return nil, err
	}

	return &Weibull{p: p}, nil
}

// Params returns the parameter set.
func (m *Weibull) Params() WeibullParams { return m.p }

// Name implements Curve.
func (m *Weibull) Name() string { return "weibull" }

// At implements Curve.
func (m *Weibull) At(t float64) float64 {
	if t < 0 {
		t = 0
	}
	burst := m.p.Burst
	if m.p.BurstTau > 0 {
		burst = m.p.Burst * (1 - math.Exp(-t/m.p.BurstTau))
	}

	return burst + (m.p.Fmax-m.p.Burst)*(1-math.Exp(-math.Pow(t/m.p.Tau, m.p.Beta)))
}

// Eval implements Curve.
func (m *Weibull) Eval(ts []float64) []float64 { return evalAll(m.At, ts) }

// Higuchi is the square-root matrix-diffusion model, capped at Fmax.
type Higuchi struct {
	p HiguchiParams
}

// NewHiguchi validates kH > 0 and Fmax ∈ (0,1].
func NewHiguchi(p HiguchiParams) (*Higuchi, error) {
	const op = "model.NewHiguchi"
	if err := positive(op, "kh", p.KH); err != nil {
		return nil, err
	}
	if err := fraction(op, "fmax", p.Fmax, 0, false); err != nil {
		return nil, err
	}

	return &Higuchi{p: p}, nil
}

// Name implements Curve.
func (m *Higuchi) Name() string { return "higuchi" }

// At implements Curve.
func (m *Higuchi) At(t float64) float64 {
	if t <= 0 {
		return 0
	}

	return math.Min(m.p.KH*math.Sqrt(t), m.p.Fmax)
}

// Eval implements Curve.
func (m *Higuchi) Eval(ts []float64) []float64 { return evalAll(m.At, ts) }

var (
	_ Curve = (*OralPK)(nil)
	_ Curve = (*DepotPK)(nil)
	_ Curve = (*ImpulseResponse)(nil)
	_ Curve = (*FirstOrder)(nil)
	_ Curve = (*Weibull)(nil)
	_ Curve = (*Higuchi)(nil)
)
