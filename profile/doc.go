// Package profile generates synthetic dissolution and PK time series from the
// closed-form models in package model, and assembles them into Formulations.
//
// 🚀 What it provides:
//
//   - Generate(kind, params, grid, seed, opts...) – one model evaluated on a
//     grid, with optional Gaussian noise (WithNoise), lag time (WithLag) and
//     unit label (WithUnit).
//   - Formulation – an immutable (ID, parameters, dissolution, PK) bundle.
//   - Spec / Build / BuildAll – declarative formulation construction; BuildAll
//     runs formulations concurrently and returns them sorted by ID.
//   - LevelAScenario, LevelBPathological, LevelCScenario – the reference
//     teaching scenarios (ER oral tablets, the equal-MDT pitfall, PLGA depot).
//
// ✨ Determinism:
//
//	Identical (kind, params, grid, seed, options) give bit-identical series.
//	Noise is drawn in grid order from math/rand seeded with seed. Build and
//	BuildAll derive a per-formulation, per-channel seed from (seed, ID), so
//	concurrent builds do not depend on scheduling.
//
// Option constructors panic on meaningless values (negative sigma, negative
// lag, unknown unit). Generate itself never panics; invalid parameters come
// back as errors wrapping diag.ErrDomain.
package profile
