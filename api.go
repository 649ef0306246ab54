// SPDX-License-Identifier: MIT
// Package: ivivc
//
// api.go — package-level operations with DefaultConfig.

package ivivc

import (
	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/deconv"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
	"github.com/katalvlaran/ivivc/validation"
)

func defaultEngine() *Engine { return NewEngine(DefaultConfig()) }

// GenerateProfile evaluates kind on grid; see profile.Generate.
func GenerateProfile(kind profile.Kind, params profile.Params, grid series.Grid, seed int64, opts ...profile.Option) (series.TimeSeries, error) {
	return defaultEngine().GenerateProfile(kind, params, grid, seed, opts...)
}

// Deconvolve runs Wagner–Nelson on c with elimination constant ke.
func Deconvolve(c series.TimeSeries, ke float64) (deconv.AbsorptionProfile, error) {
	return defaultEngine().Deconvolve(c, ke)
}

// ComputeLevelA pools % dissolved vs % absorbed into one line.
func ComputeLevelA(fs []profile.Formulation) (correlation.Result, error) {
	return defaultEngine().LevelA(fs)
}

// ComputeLevelB regresses MRT on MDT.
func ComputeLevelB(fs []profile.Formulation) (correlation.Result, error) {
	return defaultEngine().LevelB(fs)
}

// ComputeLevelC builds the in-vitro × in-vivo metric matrix.
func ComputeLevelC(fs []profile.Formulation, inVitro, inVivo []correlation.Metric) (correlation.Matrix, error) {
	return defaultEngine().LevelC(fs, inVitro, inVivo)
}

// SimilarityF1F2 returns f1 and f2 for two profiles on one grid.
func SimilarityF1F2(ref, test series.TimeSeries) (f1, f2 float64, err error) {
	return defaultEngine().SimilarityF1F2(ref, test)
}

// Validate classifies predicted vs observed pairs with DefaultThresholds.
func Validate(predicted, observed []float64) (validation.Result, error) {
	return defaultEngine().Validate(predicted, observed)
}
