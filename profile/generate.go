// SPDX-License-Identifier: MIT
// Package: ivivc/profile
//
// generate.go — evaluate one model on a grid.
//
// Contract:
//   • Generate(kind, params, grid, seed, opts...) is pure for a fixed input:
//     bit-identical output for identical arguments.
//   • params is read, never retained.
//   • O(n) time and memory for n grid points.

package profile

import (
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// Generate evaluates the model selected by kind on grid.
//
// Errors: unknown kind, missing or invalid parameters, or an empty grid →
// diag.ErrDomain / diag.ErrInsufficientData (via series.New).
func Generate(kind Kind, params Params, grid series.Grid, seed int64, opts ...Option) (series.TimeSeries, error) {
	const op = "profile.Generate"
	cfg := newConfig(opts...)

	curve, err := NewCurve(kind, params)
	if err != nil {
		return series.TimeSeries{}, err
	}
	if grid.Len() == 0 {
		return series.TimeSeries{}, diag.Errorf(op, diag.ErrInsufficientData, "empty grid")
	}

	ts := grid.Times()
	vs := make([]float64, len(ts))
	for i, t := range ts {
		if t >= cfg.lag {
			vs[i] = curve.At(t - cfg.lag)
		}
	}

	if cfg.noiseSigma > 0 {
		rng := rngFrom(cfg, seed)
		for i := range vs {
			vs[i] += cfg.noiseSigma * rng.NormFloat64()
		}
	}

	return series.New(ts, vs, cfg.unit)
}
