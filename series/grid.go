// SPDX-License-Identifier: MIT
// Package: ivivc/series
//
// grid.go — sampling grids for synthetic profiles.
//
// Contract:
//   • Regular grids are computed as start + i·step, never by accumulation, so
//     long grids do not drift and identical inputs give identical times.
//   • stop is included when it lies on the grid within gridSnap·step.

package series

import (
	"math"

	"github.com/katalvlaran/ivivc/diag"
)

// gridSnap is the fraction of a step within which stop is considered on-grid.
const gridSnap = 1e-9

// Grid is an ordered set of sampling times.
type Grid struct {
	times []float64
}

// Regular builds the grid start, start+step, …, up to stop inclusive.
//
// Errors: ErrDomain for non-finite bounds, start < 0, step ≤ 0 or stop < start.
func Regular(start, stop, step float64) (Grid, error) {
	const op = "series.Regular"
	for _, x := range []float64{start, stop, step} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Grid{}, diag.Errorf(op, diag.ErrDomain, "grid bounds must be finite")
		}
	}
	if start < 0 {
		return Grid{}, diag.ParamError(op, "start", diag.ErrDomain, "start=%g must be ≥ 0", start)
	}
	if step <= 0 {
		return Grid{}, diag.ParamError(op, "step", diag.ErrDomain, "step=%g must be > 0", step)
	}
	if stop < start {
		return Grid{}, diag.ParamError(op, "stop", diag.ErrDomain, "stop=%g < start=%g", stop, start)
	}

	n := int(math.Floor((stop-start)/step+gridSnap)) + 1
	ts := make([]float64, n)
	for i := range ts {
		ts[i] = start + float64(i)*step
	}

	return Grid{times: ts}, nil
}

// Explicit builds a grid from caller-chosen sampling times, which must be
// non-negative, finite and strictly increasing.
func Explicit(times ...float64) (Grid, error) {
	const op = "series.Explicit"
	if len(times) == 0 {
		return Grid{}, diag.Errorf(op, diag.ErrInsufficientData, "no sampling times")
	}
	if err := validateTimes(op, times); err != nil {
		return Grid{}, err
	}

	return Grid{times: append([]float64(nil), times...)}, nil
}

// MustExplicit is Explicit for package-level fixtures; it panics on error.
func MustExplicit(times ...float64) Grid {
	g, err := Explicit(times...)
	if err != nil {
		panic(err)
	}

	return g
}

// Len returns the number of sampling times.
func (g Grid) Len() int { return len(g.times) }

// Times returns a copy of the sampling times.
func (g Grid) Times() []float64 { return append([]float64(nil), g.times...) }
