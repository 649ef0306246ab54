// SPDX-License-Identifier: MIT
// Package: ivivc/deconv
//
// reconvolve.go — one-compartment reconvolution of a fraction-absorbed series.
//
// Between samples the input rate is constant, ΔFa·D/Δt, and elimination is
// exact:
//
//   C₀ = (D/Vd)·Fa₀
//   Cᵢ = Cᵢ₋₁·e^(−ke·Δt) + (D/Vd)·ΔFa·(1 − e^(−ke·Δt))/(ke·Δt)

package deconv

import (
	"math"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// Reconvolve predicts concentrations from fa for a one-compartment drug with
// elimination constant ke, absorbed dose and volume vd.
func Reconvolve(fa series.TimeSeries, ke, dose, vd float64) (series.TimeSeries, error) {
	const op = "deconv.Reconvolve"
	if fa.Len() < 2 {
		return series.TimeSeries{}, diag.Errorf(op, diag.ErrInsufficientData, "need ≥ 2 points, got %d", fa.Len())
	}
	for _, p := range []struct {
		name string
		v    float64
	}{{"ke", ke}, {"dose", dose}, {"vd", vd}} {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) || p.v <= 0 {
			return series.TimeSeries{}, diag.ParamError(op, p.name, diag.ErrDomain, "%s=%g must be finite and > 0", p.name, p.v)
		}
	}

	ts, fs := fa.Times(), fa.Values()
	scale := dose / vd
	c := make([]float64, len(ts))
	c[0] = scale * fs[0]
	for i := 1; i < len(ts); i++ {
		x := ke * (ts[i] - ts[i-1])
		decay := math.Exp(-x)
		// (1−e^(−x))/x → 1 as x → 0
		gain := 1.0
		if x > 1e-12 {
			gain = -math.Expm1(-x) / x
		}
		c[i] = c[i-1]*decay + scale*(fs[i]-fs[i-1])*gain
	}

	return series.New(ts, c, fa.Unit())
}
