// SPDX-License-Identifier: MIT
// Package: ivivc/profile
//
// config.go — generation knobs and deterministic defaults.
//
// Defaults:
//   • noiseSigma = 0     (noise-free)
//   • lag        = 0
//   • unit       = series.Hours
//   • rng        = nil   (seeded from Generate's seed when noise is on)

package profile

import (
	"math/rand"

	"github.com/katalvlaran/ivivc/series"
)

// config aggregates all generation knobs. Passed by value.
type config struct {
	noiseSigma float64
	lag        float64
	unit       series.Unit
	rng        *rand.Rand
}

// newConfig applies opts in order over the defaults (last wins).
func newConfig(opts ...Option) config {
	cfg := config{unit: series.Hours}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom prefers an explicit RNG, else seeds a fresh one.
func rngFrom(cfg config, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
