// SPDX-License-Identifier: MIT
// Package: ivivc/series
//
// moments.go — statistical moments of dissolution and concentration curves.
//
// Conventions:
//   • All integrals use the linear trapezoidal rule over the observed points.
//   • "∞" variants add a log-linear tail: with λz the terminal rate,
//       AUC(tlast,∞)  = Clast/λz
//       AUMC(tlast,∞) = Clast·tlast/λz + Clast/λz²
//   • λz comes from TerminalSlope; a non-declining end is ErrExtrapolation.
//   • Dissolution moments use increments ΔF between consecutive samples,
//     weighted by the interval midpoint.

package series

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/ivivc/diag"
)

// DefaultTerminalPoints is the number of trailing samples used to estimate
// the terminal log-linear slope when the caller passes n < 2.
const DefaultTerminalPoints = 3

// AUC returns the trapezoidal area under the curve over the observed range.
func AUC(s TimeSeries) (float64, error) {
	if s.Len() < 2 {
		return 0, diag.Errorf("series.AUC", diag.ErrInsufficientData, "need ≥ 2 points, got %d", s.Len())
	}

	return integrate.Trapezoidal(s.t, s.v), nil
}

// CumulativeAUC returns AUC(0,tᵢ) for every sample. When the first sample
// is after t=0 the curve is taken to rise from C(0)=0, so the first element
// is the triangle 0.5·C(t₀)·t₀; otherwise it is 0.
func CumulativeAUC(s TimeSeries) []float64 {
	out := make([]float64, s.Len())
	if s.Len() == 0 {
		return out
	}
	if s.t[0] > 0 {
		out[0] = 0.5 * s.v[0] * s.t[0]
	}
	for i := 1; i < s.Len(); i++ {
		out[i] = out[i-1] + 0.5*(s.v[i-1]+s.v[i])*(s.t[i]-s.t[i-1])
	}

	return out
}

// AUMC returns the trapezoidal area under the first-moment curve t·C(t).
func AUMC(s TimeSeries) (float64, error) {
	if s.Len() < 2 {
		return 0, diag.Errorf("series.AUMC", diag.ErrInsufficientData, "need ≥ 2 points, got %d", s.Len())
	}
	tc := make([]float64, s.Len())
	floats.MulTo(tc, s.t, s.v)

	return integrate.Trapezoidal(s.t, tc), nil
}

// MRTLast returns AUMC/AUC restricted to the observed window.
func MRTLast(s TimeSeries) (float64, error) {
	auc, err := AUC(s)
	if err != nil {
		return 0, err
	}
	if auc == 0 {
		return 0, diag.Errorf("series.MRTLast", diag.ErrDomain, "AUC is zero")
	}
	aumc, _ := AUMC(s)

	return aumc / auc, nil
}

// TerminalSlope estimates λz (> 0) by ordinary least squares of ln C on t
// over the last n samples (DefaultTerminalPoints when n < 2).
//
// Errors:
//   - ErrInsufficientData if fewer than 2 samples are available.
//   - ErrExtrapolation if the last two samples are not strictly declining,
//     a selected sample is ≤ 0, or the fitted slope is not negative.
func TerminalSlope(s TimeSeries, n int) (float64, error) {
	const op = "series.TerminalSlope"
	if n < 2 {
		n = DefaultTerminalPoints
	}
	if s.Len() < 2 {
		return 0, diag.Errorf(op, diag.ErrInsufficientData, "need ≥ 2 points, got %d", s.Len())
	}
	if n > s.Len() {
		n = s.Len()
	}
	last := s.Len() - 1
	if !(s.v[last] < s.v[last-1]) {
		return 0, diag.Errorf(op, diag.ErrExtrapolation,
			"last two points not strictly declining (%g → %g)", s.v[last-1], s.v[last])
	}

	xs := make([]float64, 0, n)
	ys := make([]float64, 0, n)
	for i := s.Len() - n; i < s.Len(); i++ {
		if s.v[i] <= 0 {
			return 0, diag.Errorf(op, diag.ErrExtrapolation, "non-positive value %g at t=%g", s.v[i], s.t[i])
		}
		xs = append(xs, s.t[i])
		ys = append(ys, math.Log(s.v[i]))
	}
	_, slope := stat.LinearRegression(xs, ys, nil, false)
	if !(slope < 0) {
		return 0, diag.Errorf(op, diag.ErrExtrapolation, "terminal slope %g is not negative", slope)
	}

	return -slope, nil
}

// AUCInf returns AUC(0,∞) = AUC(0,tlast) + Clast/λz.
func AUCInf(s TimeSeries, terminalPoints int) (float64, error) {
	auc, err := AUC(s)
	if err != nil {
		return 0, err
	}
	lz, err := TerminalSlope(s, terminalPoints)
	if err != nil {
		return 0, err
	}

	return auc + s.Last().V/lz, nil
}

// MRT returns AUMC(0,∞)/AUC(0,∞) using the log-linear tail.
func MRT(s TimeSeries, terminalPoints int) (float64, error) {
	auc, err := AUC(s)
	if err != nil {
		return 0, err
	}
	aumc, _ := AUMC(s)
	lz, err := TerminalSlope(s, terminalPoints)
	if err != nil {
		return 0, err
	}
	last := s.Last()
	aucInf := auc + last.V/lz
	if aucInf <= 0 {
		return 0, diag.Errorf("series.MRT", diag.ErrExtrapolation, "AUC(0,∞)=%g is not positive", aucInf)
	}
	aumcInf := aumc + last.V*last.T/lz + last.V/(lz*lz)

	return aumcInf / aucInf, nil
}

// increments returns interval midpoints and ΔF for a cumulative profile.
func increments(s TimeSeries) (mid, dF []float64) {
	n := s.Len() - 1
	mid = make([]float64, n)
	dF = make([]float64, n)
	for i := 0; i < n; i++ {
		mid[i] = 0.5 * (s.t[i] + s.t[i+1])
		dF[i] = s.v[i+1] - s.v[i]
	}

	return mid, dF
}

// MDT returns the mean dissolution time Σ(t̄ᵢ·ΔFᵢ)/ΣΔFᵢ.
// A profile with no net release has no MDT (ErrDomain).
func MDT(s TimeSeries) (float64, error) {
	if s.Len() < 2 {
		return 0, diag.Errorf("series.MDT", diag.ErrInsufficientData, "need ≥ 2 points, got %d", s.Len())
	}
	mid, dF := increments(s)
	total := floats.Sum(dF)
	if total == 0 {
		return 0, diag.Errorf("series.MDT", diag.ErrDomain, "profile releases nothing (ΣΔF = 0)")
	}

	return floats.Dot(mid, dF) / total, nil
}

// VDT returns the variance of dissolution time Σ((t̄ᵢ−MDT)²·ΔFᵢ)/ΣΔFᵢ.
func VDT(s TimeSeries) (float64, error) {
	mdt, err := MDT(s)
	if err != nil {
		return 0, err
	}
	mid, dF := increments(s)
	var acc float64
	for i := range mid {
		d := mid[i] - mdt
		acc += d * d * dF[i]
	}

	return acc / floats.Sum(dF), nil
}

// DissolutionEfficiency returns AUC / (F(tlast)·(tlast−t0)) × 100.
func DissolutionEfficiency(s TimeSeries) (float64, error) {
	auc, err := AUC(s)
	if err != nil {
		return 0, err
	}
	last := s.Last()
	box := last.V * (last.T - s.t[0])
	if box == 0 {
		return 0, diag.Errorf("series.DissolutionEfficiency", diag.ErrDomain, "reference rectangle has zero area")
	}

	return auc / box * 100, nil
}

// Cmax returns the maximum value and the time it is first reached (Tmax).
func Cmax(s TimeSeries) (cmax, tmax float64, err error) {
	if s.Len() == 0 {
		return 0, 0, diag.Errorf("series.Cmax", diag.ErrInsufficientData, "empty series")
	}
	i := floats.MaxIdx(s.v)

	return s.v[i], s.t[i], nil
}
