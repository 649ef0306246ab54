// Package ivivc is an in vitro–in vivo correlation engine for oral and depot
// drug products: closed-form PK and dissolution models, Wagner–Nelson
// deconvolution, Level A / B / C correlation, f1/f2 similarity and %PE
// validation.
//
// 🚀 What is in the box?
//
//	• model       — oral one-compartment, bi-exponential depot, first-order,
//	                Weibull-with-burst and Higuchi closed forms
//	• profile     — deterministic synthetic profiles, formulations, scenarios
//	• series      — immutable time series, grids, trapezoidal moments
//	• deconv      — Wagner–Nelson, ke estimation, reconvolution
//	• correlation — Level A (point-to-point), B (MDT vs MRT), C (matrix)
//	• similarity  — f1/f2 and DTW shape distance
//	• validation  — %PE with explicit thresholds, internal/external prediction
//	• diag        — error taxonomy (ErrDomain, ErrInsufficientData,
//	                ErrExtrapolation) and non-fatal warnings
//
// ✨ Two entry points:
//
//   - Package functions (GenerateProfile, Deconvolve, ComputeLevelA, ...) use
//     DefaultConfig.
//   - An Engine carries explicit configuration (thresholds, metric sets,
//     minimum formulations) for callers that substitute their own.
//
// Every computation is pure: same input, same output, no shared state.
// Failures come back as errors matching the diag sentinels via errors.Is;
// warnings (non-monotone absorption, too few formulations) ride along on
// the results.
//
// Quick example:
//
//	b, _ := profile.LevelAScenario(profile.DefaultScenarioConfig()).Build(1)
//	res, err := ivivc.ComputeLevelA(b.Formulations)
//	// res.Slope, res.Intercept, res.R2, res.Warnings
//
// The cmd/ivivc binary wraps the engine in a CLI and a JSON HTTP API.
package ivivc
