// Package deconv recovers the in vivo absorption profile from a plasma
// concentration series (Wagner–Nelson, one-compartment) and runs the inverse
// step (reconvolution) used for IVIVC predictions.
//
// Wagner–Nelson:
//
//	Fa(t) = [C(t) + ke·AUC(0,t)] / [ke·AUC(0,∞)],  AUC(0,∞) = AUC(0,tlast) + C(tlast)/ke
//
// AUC is trapezoidal. The method needs no IV reference, only ke, which may be
// supplied or estimated from the terminal phase with EstimateKe.
//
// Fatal conditions (errors.Is): diag.ErrInsufficientData for fewer than three
// samples, diag.ErrDomain for a non-positive ke, diag.ErrExtrapolation when
// the profile is not declining at its end. A decrease of Fa beyond tolerance
// is reported as a diag.NonMonotonicAbsorption warning and never clamped.
package deconv
