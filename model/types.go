// SPDX-License-Identifier: MIT
// Package: ivivc/model
//
// types.go — Curve interface, parameter sets and shared validation helpers.

package model

import (
	"math"

	"github.com/katalvlaran/ivivc/diag"
)

// DefaultFlipFlopEpsilon is the smallest |ka−ke| accepted by NewOralPK.
const DefaultFlipFlopEpsilon = 1e-9

// Curve is a validated closed-form model of time.
type Curve interface {
	// At evaluates the model at time t.
	At(t float64) float64
	// Eval evaluates the model at every time in ts, preserving order.
	Eval(ts []float64) []float64
	// Name identifies the model family ("oral-1c", "weibull", ...).
	Name() string
}

// OralParams parameterises the one-compartment oral model.
type OralParams struct {
	Dose float64 // administered dose (mg)
	Ka   float64 // absorption rate constant (1/time)
	Ke   float64 // elimination rate constant (1/time)
	Vd   float64 // volume of distribution (L)
}

// DepotParams parameterises the bi-exponential depot model.
type DepotParams struct {
	A1     float64 // coefficient of the absorption–disposition phase
	Alpha1 float64 // disposition rate constant (1/time)
	A2     float64 // coefficient of the sustained phase
	Alpha2 float64 // terminal rate constant (1/time)
	Ka     float64 // absorption rate constant (1/time)
}

// FirstOrderParams parameterises F(t) = Fmax·(1 − e^(−k·t)).
type FirstOrderParams struct {
	Fmax float64 // plateau fraction, (0, 1]
	K    float64 // release rate constant (1/time)
}

// WeibullParams parameterises F(t) = burst + (Fmax−burst)·(1 − e^(−(t/τ)^β)).
//
// BurstTau = 0 releases the burst instantaneously (F(0) = Burst). A positive
// BurstTau spreads it as Burst·(1 − e^(−t/BurstTau)), so F(0) = 0.
type WeibullParams struct {
	Burst    float64 // burst fraction, [0, 1)
	Fmax     float64 // plateau fraction, Burst ≤ Fmax ≤ 1
	Tau      float64 // scale (time), > 0
	Beta     float64 // shape, > 0
	BurstTau float64 // burst time constant, ≥ 0
}

// HiguchiParams parameterises F(t) = min(kH·√t, Fmax).
type HiguchiParams struct {
	KH   float64 // Higuchi constant (1/√time), > 0
	Fmax float64 // cap, (0, 1]
}

// finite reports whether x is neither NaN nor ±Inf.
func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// positive validates x > 0 and finite.
func positive(op, name string, x float64) error {
	if !finite(x) || x <= 0 {
		return diag.ParamError(op, name, diag.ErrDomain, "%s=%g must be finite and > 0", name, x)
	}

	return nil
}

// nonNegative validates x ≥ 0 and finite.
func nonNegative(op, name string, x float64) error {
	if !finite(x) || x < 0 {
		return diag.ParamError(op, name, diag.ErrDomain, "%s=%g must be finite and ≥ 0", name, x)
	}

	return nil
}

// fraction validates lo < x ≤ 1 (or lo ≤ x when inclusive).
func fraction(op, name string, x, lo float64, inclusive bool) error {
	ok := finite(x) && x <= 1 && (x > lo || (inclusive && x == lo))
	if !ok {
		return diag.ParamError(op, name, diag.ErrDomain, "%s=%g must be a fraction in (%g, 1]", name, x, lo)
	}

	return nil
}

// evalAll maps at over ts in order.
func evalAll(at func(float64) float64, ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = at(t)
	}

	return out
}
