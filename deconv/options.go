// SPDX-License-Identifier: MIT
// Package: ivivc/deconv
//
// options.go — knobs for WagnerNelson.

package deconv

import (
	"fmt"
	"math"
)

// DefaultMonotonicTolerance is the largest Fa decrease tolerated silently.
const DefaultMonotonicTolerance = 1e-6

// MinPoints is the minimum number of samples WagnerNelson accepts.
const MinPoints = 3

type config struct {
	tol     float64
	subject string
}

// Option customises WagnerNelson.
type Option func(*config)

// WithTolerance sets the monotonicity tolerance. Panics on tol < 0 or NaN.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol < 0 {
		panic(fmt.Sprintf("deconv: WithTolerance(%g)", tol))
	}
	return func(c *config) { c.tol = tol }
}

// WithSubject names the formulation in warnings and errors.
func WithSubject(id string) Option {
	return func(c *config) { c.subject = id }
}

func newConfig(opts ...Option) config {
	cfg := config{tol: DefaultMonotonicTolerance}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
