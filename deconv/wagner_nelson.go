// SPDX-License-Identifier: MIT
// Package: ivivc/deconv
//
// wagner_nelson.go — one-compartment deconvolution.
//
// Steps:
//   1) cumulative trapezoidal AUC(0,tᵢ), rising from C(0)=0 if t₀ > 0
//   2) AUC(0,∞) = AUC(0,tlast) + C(tlast)/ke, requiring C(tlast) < C(tlast−1)
//   3) amount Aᵢ = Cᵢ + ke·AUCᵢ, Faᵢ = Aᵢ / (ke·AUC(0,∞)), Fa(tlast) = 1
//   4) scan for Faᵢ < Faᵢ₋₁ − tol

package deconv

import (
	"math"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// AbsorptionProfile is the Wagner–Nelson output.
type AbsorptionProfile struct {
	Fa            series.TimeSeries `json:"fa"`             // fraction absorbed, 0..1 nominal
	CumulativeAUC []float64         `json:"cumulative_auc"` // AUC(0,tᵢ)
	AUCInf        float64           `json:"auc_inf"`        // AUC(0,∞)
	Amount        []float64         `json:"amount"`         // C + ke·AUC(0,t), unnormalised
	Ke            float64           `json:"ke"`
	Warnings      []diag.Warning    `json:"warnings,omitempty"`
}

// Monotone reports whether no NonMonotonicAbsorption warning was raised.
func (p AbsorptionProfile) Monotone() bool {
	return !diag.Has(p.Warnings, diag.NonMonotonicAbsorption)
}

// WagnerNelson deconvolves c with elimination constant ke.
//
// Complexity: O(n) time and memory for n samples.
func WagnerNelson(c series.TimeSeries, ke float64, opts ...Option) (AbsorptionProfile, error) {
	const op = "deconv.WagnerNelson"
	cfg := newConfig(opts...)
	fail := func(err error) (AbsorptionProfile, error) {
		if cfg.subject != "" {
			err = diag.WithSubject(op, cfg.subject, err)
		}

		return AbsorptionProfile{}, err
	}

	n := c.Len()
	if n < MinPoints {
		return fail(diag.Errorf(op, diag.ErrInsufficientData, "need ≥ %d points, got %d", MinPoints, n))
	}
	if math.IsNaN(ke) || math.IsInf(ke, 0) || ke <= 0 {
		return fail(diag.ParamError(op, "ke", diag.ErrDomain, "ke=%g must be finite and > 0", ke))
	}

	ts, cs := c.Times(), c.Values()
	if !(cs[n-1] < cs[n-2]) {
		return fail(diag.Errorf(op, diag.ErrExtrapolation,
			"terminal phase not declining: C(%g)=%g, C(%g)=%g", ts[n-2], cs[n-2], ts[n-1], cs[n-1]))
	}

	cum := series.CumulativeAUC(c)
	aucInf := cum[n-1] + cs[n-1]/ke
	denom := ke * aucInf
	if !(denom > 0) {
		return fail(diag.Errorf(op, diag.ErrExtrapolation, "ke·AUC(0,∞)=%g is not positive", denom))
	}

	amount := make([]float64, n)
	fa := make([]float64, n)
	for i := range cs {
		amount[i] = cs[i] + ke*cum[i]
		fa[i] = amount[i] / denom
	}
	fa[n-1] = 1

	out := AbsorptionProfile{CumulativeAUC: cum, AUCInf: aucInf, Amount: amount, Ke: ke}

	var (
		drops int
		first = -1
	)
	for i := 1; i < n; i++ {
		if fa[i] < fa[i-1]-cfg.tol {
			if first < 0 {
				first = i
			}
			drops++
		}
	}
	if drops > 0 {
		out.Warnings = append(out.Warnings, diag.Warnf(diag.NonMonotonicAbsorption, cfg.subject,
			"Fa decreases at t=%g (%g → %g); %d decrease(s) beyond tol %g",
			ts[first], fa[first-1], fa[first], drops, cfg.tol))
	}

	s, err := series.New(ts, fa, c.Unit())
	if err != nil {
		return fail(err)
	}
	out.Fa = s

	return out, nil
}

// EstimateKe fits the terminal log-linear phase over the last terminalPoints
// samples (series.DefaultTerminalPoints when < 2).
func EstimateKe(c series.TimeSeries, terminalPoints int) (float64, error) {
	return series.TerminalSlope(c, terminalPoints)
}
