// SPDX-License-Identifier: MIT
// Package: ivivc
//
// analysis.go — end-to-end runs of the reference scenarios, shared by the
// CLI and the HTTP API.

package ivivc

import (
	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/similarity"
	"github.com/katalvlaran/ivivc/validation"
)

// LevelAReport is the Level A scenario with its internal validation.
type LevelAReport struct {
	Scenario     string                  `json:"scenario"`
	Formulations []profile.Formulation   `json:"formulations"`
	Correlation  correlation.Result      `json:"correlation"`
	Predictions  []validation.Prediction `json:"predictions"`
	Validation   validation.Result       `json:"validation"`
}

// LevelBReport holds the reference Level B fit and the equal-MDT pitfall.
type LevelBReport struct {
	Correlation  correlation.Result `json:"correlation"`
	Pathological correlation.Result `json:"pathological"`
}

// LevelCReport is the depot scenario matrix plus dissolution similarity.
type LevelCReport struct {
	Scenario   string              `json:"scenario"`
	Matrix     correlation.Matrix  `json:"matrix"`
	Best       *correlation.Cell   `json:"best,omitempty"`
	Similarity []similarity.Result `json:"similarity"`
}

// Warnings collects every warning of the report.
func (r LevelAReport) Warnings() []diag.Warning { return r.Correlation.Warnings }

// Warnings collects every warning of the report.
func (r LevelBReport) Warnings() []diag.Warning {
	return append(append([]diag.Warning(nil), r.Correlation.Warnings...), r.Pathological.Warnings...)
}

// Warnings collects every warning of the report.
func (r LevelCReport) Warnings() []diag.Warning { return r.Matrix.Warnings }

// RunLevelA builds the Level A scenario, fits the line and validates the
// internal predictions.
func (e *Engine) RunLevelA(sc profile.ScenarioConfig, seed int64) (LevelAReport, error) {
	scenario := profile.LevelAScenario(sc)
	b, err := scenario.Build(seed)
	if err != nil {
		return LevelAReport{}, err
	}
	res, err := e.LevelA(b.Formulations)
	if err != nil {
		return LevelAReport{}, err
	}
	ctx := validation.PKContext{Dose: scenario.Dose, Vd: scenario.Vd, Ke: scenario.Ke}
	ps, err := validation.PredictInternal(b.Formulations, res.Line, ctx)
	if err != nil {
		return LevelAReport{}, err
	}
	v, err := e.ValidateEntries(validation.Entries(ps))
	if err != nil {
		return LevelAReport{}, err
	}

	return LevelAReport{
		Scenario:     b.Name,
		Formulations: b.Formulations,
		Correlation:  res,
		Predictions:  ps,
		Validation:   v,
	}, nil
}

// RunLevelB fits Level B on the Level A formulations and on the
// pathological pair.
func (e *Engine) RunLevelB(sc profile.ScenarioConfig, seed int64) (LevelBReport, error) {
	a, err := profile.LevelAScenario(sc).Build(seed)
	if err != nil {
		return LevelBReport{}, err
	}
	ref, err := e.LevelB(a.Formulations)
	if err != nil {
		return LevelBReport{}, err
	}
	p, err := profile.LevelBPathological(sc).Build(seed)
	if err != nil {
		return LevelBReport{}, err
	}
	path, err := e.LevelB(p.Formulations)
	if err != nil {
		return LevelBReport{}, err
	}

	return LevelBReport{Correlation: ref, Pathological: path}, nil
}

// RunLevelC builds the depot scenario, the metric matrix and the f1/f2
// comparisons (pairwise and against the solution).
func (e *Engine) RunLevelC(sc profile.ScenarioConfig, seed int64) (LevelCReport, error) {
	b, err := profile.LevelCScenario(sc).Build(seed)
	if err != nil {
		return LevelCReport{}, err
	}
	m, err := e.LevelC(b.Formulations, nil, nil)
	if err != nil {
		return LevelCReport{}, err
	}
	sims, err := e.Similarity(b)
	if err != nil {
		return LevelCReport{}, err
	}
	out := LevelCReport{Scenario: b.Name, Matrix: m, Similarity: sims}
	if best, ok := m.Best(); ok {
		out.Best = &best
	}

	return out, nil
}

// Similarity runs f1/f2 over every formulation pair of b and, when b has a
// reference, each formulation against it.
func (e *Engine) Similarity(b profile.Built) ([]similarity.Result, error) {
	out, err := similarity.Pairwise(b.Formulations)
	if err != nil {
		return nil, err
	}
	if b.Reference != nil {
		vs, err := similarity.VersusReference(b.Formulations, *b.Reference)
		if err != nil {
			return nil, err
		}
		out = append(out, vs...)
	}

	return out, nil
}
