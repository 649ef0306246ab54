// SPDX-License-Identifier: MIT
// Package: ivivc/correlation
//
// fit.go — ordinary least squares shared by every level.

package correlation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ivivc/diag"
)

// Line is an OLS fit y = Intercept + Slope·x.
type Line struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	R2        float64 `json:"r2"`
	// StdErr is the standard error of the slope; 0 when n ≤ 2.
	StdErr float64 `json:"std_err"`
	N      int     `json:"n"`
}

// Predict evaluates the line at x.
func (l Line) Predict(x float64) float64 { return l.Intercept + l.Slope*x }

// Fit regresses y on x.
//
// Errors: fewer than 2 points → ErrInsufficientData; length mismatch,
// non-finite values or zero variance in x → ErrDomain.
//
// Complexity: O(n) time, O(1) extra memory.
func Fit(x, y []float64) (Line, error) {
	const op = "correlation.Fit"
	if len(x) != len(y) {
		return Line{}, diag.Errorf(op, diag.ErrDomain, "length mismatch: %d x vs %d y", len(x), len(y))
	}
	if len(x) < 2 {
		return Line{}, diag.Errorf(op, diag.ErrInsufficientData, "need ≥ 2 points, got %d", len(x))
	}
	for i := range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0) {
			return Line{}, diag.Errorf(op, diag.ErrDomain, "non-finite pair (%g, %g) at %d", x[i], y[i], i)
		}
	}
	if stat.Variance(x, nil) == 0 {
		return Line{}, diag.Errorf(op, diag.ErrDomain, "regression undefined: predictor has zero variance")
	}

	alpha, beta := stat.LinearRegression(x, y, nil, false)
	l := Line{Slope: beta, Intercept: alpha, N: len(x)}

	var ssRes float64
	for i := range x {
		r := y[i] - l.Predict(x[i])
		ssRes += r * r
	}
	if stat.Variance(y, nil) == 0 {
		// a constant response is fitted exactly by the flat line
		l.R2 = 1
	} else {
		l.R2 = stat.RSquared(x, y, nil, alpha, beta)
	}

	if n := len(x); n > 2 {
		mx := stat.Mean(x, nil)
		var sxx float64
		for _, v := range x {
			sxx += (v - mx) * (v - mx)
		}
		l.StdErr = math.Sqrt(ssRes/float64(n-2)) / math.Sqrt(sxx)
	}

	return l, nil
}
