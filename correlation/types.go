// SPDX-License-Identifier: MIT
// Package: ivivc/correlation
//
// types.go — results, options and alignment policy.

package correlation

import (
	"github.com/katalvlaran/ivivc/deconv"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// Level names a correlation level.
type Level string

const (
	LevelAName Level = "A"
	LevelBName Level = "B"
	LevelCName Level = "C"
)

// DefaultMinFormulations is the smallest formulation count that carries
// goodness-of-fit information for Level B and C.
const DefaultMinFormulations = 3

// Point is one regression observation. Subject is the formulation ID; T is
// the sampling time and is only set for Level A.
type Point struct {
	Subject  string  `json:"subject"`
	T        float64 `json:"t,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Residual float64 `json:"residual"`
}

// Moments are the per-formulation statistical moments used by Level B.
type Moments struct {
	Subject string  `json:"subject"`
	MDT     float64 `json:"mdt"`
	VDT     float64 `json:"vdt"`
	MRT     float64 `json:"mrt"`
}

// Result is a fitted correlation.
type Result struct {
	Level  Level  `json:"level"`
	XLabel string `json:"x_label"`
	YLabel string `json:"y_label"`
	Line
	Points   []Point        `json:"points"`
	Moments  []Moments      `json:"moments,omitempty"`
	Warnings []diag.Warning `json:"warnings,omitempty"`
	// Undefined is set when no line exists through the points (zero spread
	// in the predictor); Line is then zero and Detail says why.
	Undefined bool   `json:"undefined,omitempty"`
	Detail    string `json:"detail,omitempty"`
}

// Residuals returns the residuals in point order.
func (r Result) Residuals() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Residual
	}

	return out
}

// SlopeSign returns −1, 0 or +1.
func (r Result) SlopeSign() int {
	switch {
	case r.Slope > 0:
		return 1
	case r.Slope < 0:
		return -1
	}

	return 0
}

// Alignment selects how Level A pairs dissolution with absorption samples.
type Alignment int

const (
	// AlignExact pairs only samples taken at the same time (±1e-9).
	AlignExact Alignment = iota
	// AlignInterpolate interpolates dissolution linearly at every PK time
	// inside the dissolution window.
	AlignInterpolate
)

// String implements fmt.Stringer.
func (a Alignment) String() string {
	if a == AlignInterpolate {
		return "interpolate"
	}

	return "exact"
}

// Options configures all levels. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	// Ke overrides the elimination constant for Level A when > 0. Otherwise
	// the formulation's "ke" parameter is used, else it is estimated from
	// the terminal phase.
	Ke float64
	// TerminalPoints is the window for terminal-slope fits (ke, MRT).
	TerminalPoints int
	// Alignment pairs Level A samples.
	Alignment Alignment
	// Tolerance for the Wagner–Nelson monotonicity check.
	Tolerance float64
	// MinFormulations below which Level B/C attach a warning.
	MinFormulations int
	// InVitro and InVivo are the Level C candidate metrics.
	InVitro []Metric
	InVivo  []Metric
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		TerminalPoints:  series.DefaultTerminalPoints,
		Alignment:       AlignExact,
		Tolerance:       deconv.DefaultMonotonicTolerance,
		MinFormulations: DefaultMinFormulations,
		InVitro:         DefaultInVitroMetrics(),
		InVivo:          DefaultInVivoMetrics(),
	}
}

func (o Options) minFormulations() int {
	if o.MinFormulations < 1 {
		return DefaultMinFormulations
	}

	return o.MinFormulations
}

func insufficient(level Level, n, need int) diag.Warning {
	return diag.Warnf(diag.InsufficientFormulations, "level "+string(level),
		"%d formulation(s), %d required: the fit carries no goodness-of-fit information", n, need)
}
