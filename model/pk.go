// SPDX-License-Identifier: MIT
// Package: ivivc/model
//
// pk.go — pharmacokinetic closed forms.
//
//   Oral one-compartment:
//     C(t) = (D·ka) / (Vd·(ka−ke)) · [e^(−ke·t) − e^(−ka·t)]
//     tmax = ln(ka/ke) / (ka−ke)
//   Bi-exponential depot:
//     C(t) = A1·e^(−α1·t)·(1 − e^(−ka·t)) + A2·e^(−α2·t)
//   Unit impulse response (IV bolus, one compartment):
//     h(t) = e^(−ke·t) / Vd
//
// The oral form is singular at ka = ke (flip-flop); NewOralPK rejects
// |ka−ke| < DefaultFlipFlopEpsilon instead of returning ±Inf/NaN.

package model

import (
	"math"

	"github.com/katalvlaran/ivivc/diag"
)

// OralPK is a validated one-compartment oral model.
type OralPK struct {
	p     OralParams
	coeff float64 // D·ka / (Vd·(ka−ke))
}

// NewOralPK validates p. Errors wrap diag.ErrDomain and name the parameter.
func NewOralPK(p OralParams) (*OralPK, error) {
	const op = "model.NewOralPK"
	if err := positive(op, "dose", p.Dose); err != nil {
		return nil, err
	}
	if err := positive(op, "ka", p.Ka); err != nil {
		return nil, err
	}
	if err := positive(op, "ke", p.Ke); err != nil {
		return nil, err
	}
	if err := positive(op, "vd", p.Vd); err != nil {
		return nil, err
	}
	if math.Abs(p.Ka-p.Ke) < DefaultFlipFlopEpsilon {
		return nil, diag.ParamError(op, "ka", diag.ErrDomain,
			"flip-flop singularity: |ka−ke|=%g < %g", math.Abs(p.Ka-p.Ke), DefaultFlipFlopEpsilon)
	}

	return &OralPK{p: p, coeff: p.Dose * p.Ka / (p.Vd * (p.Ka - p.Ke))}, nil
}

// Params returns the parameter set.
func (m *OralPK) Params() OralParams { return m.p }

// Name implements Curve.
func (m *OralPK) Name() string { return "oral-1c" }

// At implements Curve. Negative times give 0 (nothing administered yet).
func (m *OralPK) At(t float64) float64 {
	if t <= 0 {
		return 0
	}

	return m.coeff * (math.Exp(-m.p.Ke*t) - math.Exp(-m.p.Ka*t))
}

// Eval implements Curve.
func (m *OralPK) Eval(ts []float64) []float64 { return evalAll(m.At, ts) }

// Tmax returns the analytical time of peak concentration ln(ka/ke)/(ka−ke).
func (m *OralPK) Tmax() float64 {
	return math.Log(m.p.Ka/m.p.Ke) / (m.p.Ka - m.p.Ke)
}

// Cmax returns C(Tmax()).
func (m *OralPK) Cmax() float64 { return m.At(m.Tmax()) }

// AUCInf returns the analytical AUC(0,∞) = D/(Vd·ke).
func (m *OralPK) AUCInf() float64 { return m.p.Dose / (m.p.Vd * m.p.Ke) }

// FractionAbsorbed returns the analytical Fa(t) = 1 − e^(−ka·t).
func (m *OralPK) FractionAbsorbed(t float64) float64 {
	if t <= 0 {
		return 0
	}

	return 1 - math.Exp(-m.p.Ka*t)
}

// DepotPK is a validated bi-exponential depot model.
type DepotPK struct {
	p DepotParams
}

// NewDepotPK validates p: rate constants > 0, coefficients ≥ 0, and at least
// one non-zero coefficient.
func NewDepotPK(p DepotParams) (*DepotPK, error) {
	const op = "model.NewDepotPK"
	for _, c := range []struct {
		name string
		v    float64
	}{{"alpha1", p.Alpha1}, {"alpha2", p.Alpha2}, {"ka", p.Ka}} {
		if err := positive(op, c.name, c.v); err != nil {
			return nil, err
		}
	}
	if err := nonNegative(op, "a1", p.A1); err != nil {
		return nil, err
	}
	if err := nonNegative(op, "a2", p.A2); err != nil {
		return nil, err
	}
	if p.A1 == 0 && p.A2 == 0 {
		return nil, diag.ParamError(op, "a1", diag.ErrDomain, "a1 and a2 are both zero")
	}

	return &DepotPK{p: p}, nil
}

// Params returns the parameter set.
func (m *DepotPK) Params() DepotParams { return m.p }

// Name implements Curve.
func (m *DepotPK) Name() string { return "depot-biexp" }

// At implements Curve. Negative times are evaluated at 0.
func (m *DepotPK) At(t float64) float64 {
	if t < 0 {
		t = 0
	}

	return m.p.A1*math.Exp(-m.p.Alpha1*t)*(1-math.Exp(-m.p.Ka*t)) + m.p.A2*math.Exp(-m.p.Alpha2*t)
}

// Eval implements Curve.
func (m *DepotPK) Eval(ts []float64) []float64 { return evalAll(m.At, ts) }

// ImpulseResponse is the one-compartment unit impulse response.
type ImpulseResponse struct {
	ke, vd float64
}

// NewImpulseResponse validates ke, vd > 0.
func NewImpulseResponse(ke, vd float64) (*ImpulseResponse, error) {
	const op = "model.NewImpulseResponse"
	if err := positive(op, "ke", ke); err != nil {
		return nil, err
	}
	if err := positive(op, "vd", vd); err != nil {
		return nil, err
	}

	return &ImpulseResponse{ke: ke, vd: vd}, nil
}

// Name implements Curve.
func (h *ImpulseResponse) Name() string { return "impulse-1c" }

// At implements Curve; h(t) = 0 for t < 0.
func (h *ImpulseResponse) At(t float64) float64 {
	if t < 0 {
		return 0
	}

	return math.Exp(-h.ke*t) / h.vd
}

// Eval implements Curve.
func (h *ImpulseResponse) Eval(ts []float64) []float64 { return evalAll(h.At, ts) }
