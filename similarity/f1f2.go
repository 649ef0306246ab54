// SPDX-License-Identifier: MIT
// Package: ivivc/similarity
//
// f1f2.go — difference and similarity factors.

package similarity

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
)

// Regulatory limits for Result.Similar.
const (
	MaxF1 = 15.0
	MinF2 = 50.0
)

// Result holds the factors for one (reference, test) comparison.
type Result struct {
	Ref  string  `json:"ref,omitempty"`
	Test string  `json:"test,omitempty"`
	F1   float64 `json:"f1"`
	F2   float64 `json:"f2"`
	N    int     `json:"n"`
}

// Similar reports f1 ≤ MaxF1 and f2 ≥ MinF2.
func (r Result) Similar() bool { return r.F1 <= MaxF1 && r.F2 >= MinF2 }

// String implements fmt.Stringer.
func (r Result) String() string {
	verdict := "not similar"
	if r.Similar() {
		verdict = "similar"
	}

	return fmt.Sprintf("%s vs %s: f1=%.2f f2=%.2f (%s)", r.Ref, r.Test, r.F1, r.F2, verdict)
}

// Factors computes f1 and f2 on % released values.
//
// Errors: empty input → ErrInsufficientData; length mismatch, non-finite
// values or ΣR = 0 → ErrDomain.
func Factors(ref, test []float64) (f1, f2 float64, err error) {
	const op = "similarity.Factors"
	if len(ref) == 0 || len(test) == 0 {
		return 0, 0, diag.Errorf(op, diag.ErrInsufficientData, "empty profile")
	}
	if len(ref) != len(test) {
		return 0, 0, diag.Errorf(op, diag.ErrDomain, "profiles have %d and %d points", len(ref), len(test))
	}
	for i := range ref {
		if math.IsNaN(ref[i]) || math.IsInf(ref[i], 0) || math.IsNaN(test[i]) || math.IsInf(test[i], 0) {
			return 0, 0, diag.Errorf(op, diag.ErrDomain, "non-finite value at %d", i)
		}
	}
	sumR := floats.Sum(ref)
	if sumR == 0 {
		return 0, 0, diag.Errorf(op, diag.ErrDomain, "reference releases nothing (ΣR = 0)")
	}

	var absDiff, sq float64
	for i := range ref {
		d := ref[i] - test[i]
		absDiff += math.Abs(d)
		sq += d * d
	}
	f1 = absDiff / sumR * 100
	f2 = 50 * math.Log10(100/math.Sqrt(1+sq/float64(len(ref))))

	return f1, f2, nil
}

// F1F2 compares two fraction-released series on the same grid (values are
// converted to percent).
func F1F2(ref, test series.TimeSeries) (Result, error) {
	if ref.Len() > 0 && test.Len() > 0 && !ref.SameGrid(test) {
		return Result{}, diag.Errorf("similarity.F1F2", diag.ErrDomain, "profiles are sampled on different grids")
	}
	r := ref.Scale(100).Values()
	t := test.Scale(100).Values()
	f1, f2, err := Factors(r, t)
	if err != nil {
		return Result{}, err
	}

	return Result{F1: f1, F2: f2, N: len(r)}, nil
}

// Compare is F1F2 on two formulations' dissolution series, labelled.
func Compare(ref, test profile.Formulation) (Result, error) {
	res, err := F1F2(ref.Dissolution(), test.Dissolution())
	if err != nil {
		return Result{}, diag.WithSubject("similarity.Compare", ref.ID()+" vs "+test.ID(), err)
	}
	res.Ref, res.Test = ref.ID(), test.ID()

	return res, nil
}

// Pairwise compares every pair (fs[i], fs[j]) with i < j, fs[i] as reference.
func Pairwise(fs []profile.Formulation) ([]Result, error) {
	out := make([]Result, 0, len(fs)*(len(fs)-1)/2)
	for i := range fs {
		for j := i + 1; j < len(fs); j++ {
			r, err := Compare(fs[i], fs[j])
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
	}

	return out, nil
}

// VersusReference compares each formulation against a common reference
// profile (e.g. a solution), the formulation acting as R.
func VersusReference(fs []profile.Formulation, ref profile.Formulation) ([]Result, error) {
	out := make([]Result, 0, len(fs))
	for _, f := range fs {
		r, err := Compare(f, ref)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}

	return out, nil
}
