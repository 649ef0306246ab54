// SPDX-License-Identifier: MIT
// Package: ivivc
//
// engine.go — configuration-carrying facade over the engine packages.

package ivivc

import (
	"fmt"

	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/deconv"
	"github.com/katalvlaran/ivivc/model"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
	"github.com/katalvlaran/ivivc/similarity"
	"github.com/katalvlaran/ivivc/validation"
)

// Config is the explicit configuration of an Engine.
type Config struct {
	Correlation correlation.Options
	Thresholds  validation.Thresholds
	Shape       similarity.ShapeOptions
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Correlation: correlation.DefaultOptions(),
		Thresholds:  validation.DefaultThresholds(),
		Shape:       similarity.DefaultShapeOptions(),
	}
}

// Engine runs the IVIVC operations with a fixed Config. It holds no mutable
// state and is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine returns an Engine using cfg.
func NewEngine(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// GenerateProfile evaluates a model on a grid; see profile.Generate.
func (e *Engine) GenerateProfile(kind profile.Kind, params profile.Params, grid series.Grid, seed int64, opts ...profile.Option) (series.TimeSeries, error) {
	return profile.Generate(kind, params, grid, seed, opts...)
}

// Deconvolve runs Wagner–Nelson with the configured tolerance.
func (e *Engine) Deconvolve(c series.TimeSeries, ke float64) (deconv.AbsorptionProfile, error) {
	tol := e.cfg.Correlation.Tolerance
	if tol <= 0 {
		tol = deconv.DefaultMonotonicTolerance
	}

	return deconv.WagnerNelson(c, ke, deconv.WithTolerance(tol))
}

// DeconvolvePointArea recovers the input rate of c against the unit impulse
// response h; see deconv.PointArea.
func (e *Engine) DeconvolvePointArea(c series.TimeSeries, h model.Curve) (deconv.InputProfile, error) {
	tol := e.cfg.Correlation.Tolerance
	if tol <= 0 {
		tol = deconv.DefaultMonotonicTolerance
	}

	return deconv.PointArea(c, h, deconv.WithTolerance(tol))
}

// LevelA computes the point-to-point correlation.
func (e *Engine) LevelA(fs []profile.Formulation) (correlation.Result, error) {
	return correlation.LevelA(fs, e.cfg.Correlation)
}

// LevelB computes the MDT vs MRT correlation.
func (e *Engine) LevelB(fs []profile.Formulation) (correlation.Result, error) {
	return correlation.LevelB(fs, e.cfg.Correlation)
}

// LevelC computes the metric matrix. Nil metric lists use the configured
// candidates.
func (e *Engine) LevelC(fs []profile.Formulation, inVitro, inVivo []correlation.Metric) (correlation.Matrix, error) {
	if inVitro == nil {
		inVitro = e.cfg.Correlation.InVitro
	}
	if inVivo == nil {
		inVivo = e.cfg.Correlation.InVivo
	}

	return correlation.LevelC(fs, inVitro, inVivo, e.cfg.Correlation)
}

// SimilarityF1F2 compares two fraction-released series on one grid.
func (e *Engine) SimilarityF1F2(ref, test series.TimeSeries) (f1, f2 float64, err error) {
	r, err := similarity.F1F2(ref, test)
	if err != nil {
		return 0, 0, err
	}

	return r.F1, r.F2, nil
}

// ShapeDistance is the DTW distance with the configured options.
func (e *Engine) ShapeDistance(a, b series.TimeSeries) (float64, error) {
	return similarity.ShapeDistance(a, b, e.cfg.Shape)
}

// Validate checks paired predicted/observed values with the configured
// thresholds. Entries are labelled "#1", "#2", ... in input order.
func (e *Engine) Validate(predicted, observed []float64) (validation.Result, error) {
	if len(predicted) != len(observed) {
		return validation.Result{}, fmt.Errorf("ivivc.Validate: %d predicted vs %d observed: %w",
			len(predicted), len(observed), errLengthMismatch)
	}
	es := make([]validation.Entry, len(predicted))
	for i := range predicted {
		es[i] = validation.Entry{Subject: fmt.Sprintf("#%d", i+1), Predicted: predicted[i], Observed: observed[i]}
	}

	return validation.Validate(es, e.cfg.Thresholds)
}

// ValidateEntries checks labelled entries with the configured thresholds.
func (e *Engine) ValidateEntries(es []validation.Entry) (validation.Result, error) {
	return validation.Validate(es, e.cfg.Thresholds)
}
