// SPDX-License-Identifier: MIT
// Package: ivivc/correlation
//
// level_b.go — MDT (in vitro) vs MRT (in vivo), one point per formulation.

package correlation

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
)

// LevelB regresses MRT on MDT across formulations. Formulations with equal
// MDT but different MRT are not rejected: with other formulations the
// difference shows up as residuals, and when every MDT coincides the
// Result carries the moments with Undefined set instead of failing.
func LevelB(fs []profile.Formulation, opts Options) (Result, error) {
	const op = "correlation.LevelB"
	res := Result{Level: LevelBName, XLabel: "MDT", YLabel: "MRT"}

	xs := make([]float64, 0, len(fs))
	ys := make([]float64, 0, len(fs))
	for _, f := range fs {
		m, err := FormulationMoments(f, opts)
		if err != nil {
			return Result{}, err
		}
		res.Moments = append(res.Moments, m)
		res.Points = append(res.Points, Point{Subject: f.ID(), X: m.MDT, Y: m.MRT})
		xs = append(xs, m.MDT)
		ys = append(ys, m.MRT)
	}

	if need := opts.minFormulations(); len(fs) < need {
		res.Warnings = append(res.Warnings, insufficient(LevelBName, len(fs), need))
	}

	if len(xs) >= 2 && floats.Min(xs) == floats.Max(xs) {
		res.Undefined, res.N = true, len(xs)
		res.Detail = fmt.Sprintf("every formulation has MDT=%g; MRT ranges over [%g, %g]",
			xs[0], floats.Min(ys), floats.Max(ys))

		return res, nil
	}

	line, err := Fit(xs, ys)
	if err != nil {
		return Result{}, diag.WithSubject(op, "level B", err)
	}
	res.Line = line
	for i := range res.Points {
		res.Points[i].Residual = res.Points[i].Y - line.Predict(res.Points[i].X)
	}

	return res, nil
}

// FormulationMoments computes MDT and VDT of the dissolution profile and MRT
// (AUMC(0,∞)/AUC(0,∞)) of the PK profile.
func FormulationMoments(f profile.Formulation, opts Options) (Moments, error) {
	const op = "correlation.FormulationMoments"
	if !f.HasPK() {
		return Moments{}, diag.WithSubject(op, f.ID(),
			diag.Errorf(op, diag.ErrInsufficientData, "formulation has no PK series"))
	}
	mdt, err := series.MDT(f.Dissolution())
	if err != nil {
		return Moments{}, diag.WithSubject(op, f.ID(), err)
	}
	vdt, err := series.VDT(f.Dissolution())
	if err != nil {
		return Moments{}, diag.WithSubject(op, f.ID(), err)
	}
	mrt, err := series.MRT(f.PK(), opts.TerminalPoints)
	if err != nil {
		return Moments{}, diag.WithSubject(op, f.ID(), err)
	}

	return Moments{Subject: f.ID(), MDT: mdt, VDT: vdt, MRT: mrt}, nil
}
