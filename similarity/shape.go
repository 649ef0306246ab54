// SPDX-License-Identifier: MIT
// Package: ivivc/similarity
//
// shape.go — dynamic-time-warping distance between two release profiles.
//
//   D[0][0] = 0, D[i][0] = D[0][j] = +∞
//   D[i][j] = |aᵢ − bⱼ| + min(D[i−1][j] + p, D[i][j−1] + p, D[i−1][j−1])
//
// with |i − j| ≤ Window when Window > 0 and p = SlopePenalty. Two rolling
// rows: O(n·m) time, O(m) memory.

package similarity

import (
	"math"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// ShapeOptions configures ShapeDistance.
type ShapeOptions struct {
	// Window is the Sakoe–Chiba band in samples; 0 means unconstrained.
	Window int
	// SlopePenalty is added to every non-diagonal step.
	SlopePenalty float64
	// Normalize divides the distance by n + m.
	Normalize bool
}

// DefaultShapeOptions is unconstrained, penalty-free and normalised.
func DefaultShapeOptions() ShapeOptions {
	return ShapeOptions{Normalize: true}
}

// Validate rejects meaningless options.
func (o ShapeOptions) Validate() error {
	if o.Window < 0 {
		return diag.ParamError("similarity.ShapeOptions", "window", diag.ErrDomain, "window=%d must be ≥ 0", o.Window)
	}
	if math.IsNaN(o.SlopePenalty) || o.SlopePenalty < 0 {
		return diag.ParamError("similarity.ShapeOptions", "slope_penalty", diag.ErrDomain,
			"slope penalty %g must be ≥ 0", o.SlopePenalty)
	}

	return nil
}

// ShapeDistance returns the DTW distance between the % released sequences
// of a and b. The grids may differ. A window narrower than |n − m| leaves no
// admissible path and yields +Inf.
//
// Complexity: O(n·m) time and O(m) memory for n and m samples.
func ShapeDistance(a, b series.TimeSeries, opts ShapeOptions) (float64, error) {
	if err := opts.Validate(); err != nil {
		return 0, err
	}
	x, y := a.Scale(100).Values(), b.Scale(100).Values()
	n, m := len(x), len(y)
	if n == 0 || m == 0 {
		return 0, diag.Errorf("similarity.ShapeDistance", diag.ErrInsufficientData, "empty profile")
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if opts.Window > 0 && absInt(i-j) > opts.Window {
				curr[j] = inf
				continue
			}
			best := math.Min(prev[j-1], math.Min(prev[j]+opts.SlopePenalty, curr[j-1]+opts.SlopePenalty))
			curr[j] = math.Abs(x[i-1]-y[j-1]) + best
		}
		prev, curr = curr, prev
	}

	d := prev[m]
	if opts.Normalize && !math.IsInf(d, 1) {
		d /= float64(n + m)
	}

	return d, nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
