// SPDX-License-Identifier: MIT
// Package: ivivc/profile
//
// kind.go — model kinds, parameter maps and the kind → model.Curve factory.

package profile

import (
	"math"
	"sort"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/model"
)

// Kind selects the closed-form model used by Generate.
type Kind string

const (
	FirstOrder Kind = "first-order" // fmax, k
	Weibull    Kind = "weibull"     // burst, fmax, tau, beta [, burst_tau]
	Higuchi    Kind = "higuchi"     // kh, fmax
	Biphasic   Kind = "biphasic"    // fast_frac, k_fast, k_slow
	OralPK     Kind = "oral-pk"     // dose, ka, ke, vd
	DepotPK    Kind = "depot-pk"    // a1, alpha1, a2, alpha2, ka
)

// Parameter names understood by the kinds above.
const (
	ParamFmax     = "fmax"
	ParamK        = "k"
	ParamBurst    = "burst"
	ParamTau      = "tau"
	ParamBeta     = "beta"
	ParamBurstTau = "burst_tau"
	ParamKH       = "kh"
	ParamFastFrac = "fast_frac"
	ParamKFast    = "k_fast"
	ParamKSlow    = "k_slow"
	ParamDose     = "dose"
	ParamKa       = "ka"
	ParamKe       = "ke"
	ParamVd       = "vd"
	ParamA1       = "a1"
	ParamAlpha1   = "alpha1"
	ParamA2       = "a2"
	ParamAlpha2   = "alpha2"
)

// Kinds lists every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{FirstOrder, Weibull, Higuchi, Biphasic, OralPK, DepotPK}
}

// IsDissolution reports whether k produces a cumulative fraction released.
func (k Kind) IsDissolution() bool {
	switch k {
	case FirstOrder, Weibull, Higuchi, Biphasic:
		return true
	}

	return false
}

// Params maps parameter names to values. Treat as a value: every API in this
// package copies it on the way in and on the way out.
type Params map[string]float64

// Clone returns an independent copy (nil stays nil).
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for k, v := range p {
		out[k] = v
	}

	return out
}

// Get returns the named value and whether it is present.
func (p Params) Get(name string) (float64, bool) {
	v, ok := p[name]

	return v, ok
}

// Names returns the parameter names sorted.
func (p Params) Names() []string {
	out := make([]string, 0, len(p))
	for k := range p {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// require fetches a mandatory parameter.
func (p Params) require(op, name string) (float64, error) {
	v, ok := p[name]
	if !ok {
		return 0, diag.ParamError(op, name, diag.ErrDomain, "missing parameter %q", name)
	}

	return v, nil
}

// NewCurve builds the validated model.Curve for kind from params.
func NewCurve(kind Kind, params Params) (model.Curve, error) {
	const op = "profile.NewCurve"
	var (
		vals = map[string]float64{}
		err  error
	)
	get := func(names ...string) error {
		for _, n := range names {
			if vals[n], err = params.require(op, n); err != nil {
				return err
			}
		}

		return nil
	}

	switch kind {
	case FirstOrder:
		if err = get(ParamFmax, ParamK); err != nil {
			return nil, err
		}
		return curveOf(model.NewFirstOrder(model.FirstOrderParams{Fmax: vals[ParamFmax], K: vals[ParamK]}))

	case Weibull:
		if err = get(ParamBurst, ParamFmax, ParamTau, ParamBeta); err != nil {
			return nil, err
		}
		bt, _ := params.Get(ParamBurstTau)
		return curveOf(model.NewWeibull(model.WeibullParams{
			Burst: vals[ParamBurst], Fmax: vals[ParamFmax],
			Tau: vals[ParamTau], Beta: vals[ParamBeta], BurstTau: bt,
		}))

	case Higuchi:
		if err = get(ParamKH, ParamFmax); err != nil {
			return nil, err
		}
		return curveOf(model.NewHiguchi(model.HiguchiParams{KH: vals[ParamKH], Fmax: vals[ParamFmax]}))

	case Biphasic:
		if err = get(ParamFastFrac, ParamKFast, ParamKSlow); err != nil {
			return nil, err
		}
		return curveOf(newBiphasic(vals[ParamFastFrac], vals[ParamKFast], vals[ParamKSlow]))

	case OralPK:
		if err = get(ParamDose, ParamKa, ParamKe, ParamVd); err != nil {
			return nil, err
		}
		return curveOf(model.NewOralPK(model.OralParams{
			Dose: vals[ParamDose], Ka: vals[ParamKa], Ke: vals[ParamKe], Vd: vals[ParamVd],
		}))

	case DepotPK:
		if err = get(ParamA1, ParamAlpha1, ParamA2, ParamAlpha2, ParamKa); err != nil {
			return nil, err
		}
		return curveOf(model.NewDepotPK(model.DepotParams{
			A1: vals[ParamA1], Alpha1: vals[ParamAlpha1],
			A2: vals[ParamA2], Alpha2: vals[ParamAlpha2], Ka: vals[ParamKa],
		}))
	}

	return nil, diag.Errorf(op, diag.ErrDomain, "unknown kind %q", kind)
}

// curveOf drops the typed-nil that a failed constructor would leave in the
// interface.
func curveOf(c model.Curve, err error) (model.Curve, error) {
	if err != nil {
		return nil, err
	}

	return c, nil
}

// biphasic is a fast + slow first-order release pair summing to 1.
type biphasic struct {
	fast, slow *model.FirstOrder
}

func newBiphasic(frac, kFast, kSlow float64) (*biphasic, error) {
	const op = "profile.Biphasic"
	if math.IsNaN(frac) || frac <= 0 || frac >= 1 {
		return nil, diag.ParamError(op, ParamFastFrac, diag.ErrDomain, "fast_frac=%g must be in (0, 1)", frac)
	}
	fast, err := model.NewFirstOrder(model.FirstOrderParams{Fmax: frac, K: kFast})
	if err != nil {
		return nil, err
	}
	slow, err := model.NewFirstOrder(model.FirstOrderParams{Fmax: 1 - frac, K: kSlow})
	if err != nil {
		return nil, err
	}

	return &biphasic{fast: fast, slow: slow}, nil
}

func (b *biphasic) Name() string { return string(Biphasic) }

func (b *biphasic) At(t float64) float64 { return math.Min(b.fast.At(t)+b.slow.At(t), 1) }

func (b *biphasic) Eval(ts []float64) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = b.At(t)
	}

	return out
}
