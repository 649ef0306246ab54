// SPDX-License-Identifier: MIT
// Package: ivivc/correlation
//
// level_a.go — point-to-point correlation of % dissolved vs % absorbed.

package correlation

import (
	"math"

	"github.com/katalvlaran/ivivc/deconv"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
)

const timeMatchTol = 1e-9

// ResolveKe picks the elimination constant for f: opts.Ke, else the "ke"
// parameter, else the terminal-phase estimate.
func ResolveKe(f profile.Formulation, opts Options) (float64, error) {
	if opts.Ke > 0 {
		return opts.Ke, nil
	}
	if ke, ok := f.Param(profile.ParamKe); ok && ke > 0 {
		return ke, nil
	}
	ke, err := deconv.EstimateKe(f.PK(), opts.TerminalPoints)

	return ke, diag.WithSubject("correlation.ResolveKe", f.ID(), err)
}

// Absorption deconvolves f's PK series with the resolved ke.
func Absorption(f profile.Formulation, opts Options) (deconv.AbsorptionProfile, error) {
	const op = "correlation.Absorption"
	if !f.HasPK() {
		return deconv.AbsorptionProfile{}, diag.WithSubject(op, f.ID(),
			diag.Errorf(op, diag.ErrInsufficientData, "formulation has no PK series"))
	}
	ke, err := ResolveKe(f, opts)
	if err != nil {
		return deconv.AbsorptionProfile{}, err
	}
	tol := opts.Tolerance
	if tol <= 0 {
		tol = deconv.DefaultMonotonicTolerance
	}

	return deconv.WagnerNelson(f.PK(), ke, deconv.WithSubject(f.ID()), deconv.WithTolerance(tol))
}

// LevelA pools every formulation's (% dissolved, % absorbed) pairs into one
// OLS line. Formulations are processed in the given order.
func LevelA(fs []profile.Formulation, opts Options) (Result, error) {
	const op = "correlation.LevelA"
	if len(fs) == 0 {
		return Result{}, diag.Errorf(op, diag.ErrInsufficientData, "no formulations")
	}

	res := Result{Level: LevelAName, XLabel: "% dissolved", YLabel: "% absorbed"}
	var xs, ys []float64
	for _, f := range fs {
		ap, err := Absorption(f, opts)
		if err != nil {
			return Result{}, err
		}
		res.Warnings = append(res.Warnings, ap.Warnings...)

		pairs, err := align(f.Dissolution(), ap.Fa, opts.Alignment)
		if err != nil {
			return Result{}, diag.WithSubject(op, f.ID(), err)
		}
		for _, p := range pairs {
			res.Points = append(res.Points, Point{Subject: f.ID(), T: p.T, X: 100 * p.X, Y: 100 * p.Y})
			xs = append(xs, 100*p.X)
			ys = append(ys, 100*p.Y)
		}
	}

	line, err := Fit(xs, ys)
	if err != nil {
		return Result{}, err
	}
	res.Line = line
	for i := range res.Points {
		res.Points[i].Residual = res.Points[i].Y - line.Predict(res.Points[i].X)
	}

	return res, nil
}

type pair struct{ T, X, Y float64 }

// align pairs dissolution (X) with fraction absorbed (Y) at Fa times.
func align(diss, fa series.TimeSeries, mode Alignment) ([]pair, error) {
	dt, dv := diss.Times(), diss.Values()
	out := make([]pair, 0, fa.Len())

	switch mode {
	case AlignExact:
		j := 0
		for _, p := range fa.Points() {
			for j < len(dt) && dt[j] < p.T-timeMatchTol {
				j++
			}
			if j < len(dt) && math.Abs(dt[j]-p.T) <= timeMatchTol {
				out = append(out, pair{T: p.T, X: dv[j], Y: p.V})
			}
		}
	case AlignInterpolate:
		for _, p := range fa.Points() {
			x, err := diss.Interpolate(p.T)
			if err != nil {
				continue // outside the dissolution window
			}
			out = append(out, pair{T: p.T, X: x, Y: p.V})
		}
	default:
		return nil, diag.Errorf("correlation.align", diag.ErrDomain, "unknown alignment %d", mode)
	}

	return out, nil
}
