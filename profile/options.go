// SPDX-License-Identifier: MIT
// Package: ivivc/profile
//
// options.go — functional options for Generate.
//
// Option constructors validate and panic on meaningless input; Generate never
// panics.

package profile

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/ivivc/series"
)

// Option customises a single Generate call.
type Option func(*config)

// WithNoise adds N(0, sigma²) noise to every point, drawn in grid order.
// sigma is in the units of the generated values (fraction or concentration).
func WithNoise(sigma float64) Option {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma < 0 {
		panic(fmt.Sprintf("profile: WithNoise(%g): sigma must be finite and ≥ 0", sigma))
	}
	return func(c *config) {
		c.noiseSigma = sigma
	}
}

// WithLag delays the model by tlag: values before tlag are 0 and the model
// is evaluated at t−tlag afterwards.
func WithLag(tlag float64) Option {
	if math.IsNaN(tlag) || math.IsInf(tlag, 0) || tlag < 0 {
		panic(fmt.Sprintf("profile: WithLag(%g): lag must be finite and ≥ 0", tlag))
	}
	return func(c *config) {
		c.lag = tlag
	}
}

// WithUnit labels the generated series. Rate constants are always read per
// unit of the grid; WithUnit does not rescale them.
func WithUnit(u series.Unit) Option {
	if u != series.Hours && u != series.Days {
		panic(fmt.Sprintf("profile: WithUnit(%q): unknown unit", u))
	}
	return func(c *config) {
		c.unit = u
	}
}

// WithRand supplies the noise RNG explicitly, overriding the seed argument.
// Sharing one *rand.Rand across calls makes each result depend on call order.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("profile: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
