// Package model is the closed-form model library behind ivivc: dissolution
// curves (first-order, Weibull with burst, Higuchi) and pharmacokinetic
// curves (one-compartment oral, bi-exponential depot, unit impulse response).
//
// 🚀 Usage:
//
//	pk, err := model.NewOralPK(model.OralParams{Dose: 100, Ka: 1.0, Ke: 0.1, Vd: 50})
//	if err != nil {
//		// errors.Is(err, diag.ErrDomain), e.g. flip-flop ka≈ke
//	}
//	c := pk.Eval([]float64{0, 0.5, 1, 2}) // same order as the input
//
// Every constructor validates its parameter set once and returns a Curve
// whose At/Eval are pure, deterministic and allocation-light. Parameters are
// plain values; changing one means building a new Curve.
//
// Units follow the caller: rate constants are per time unit of the grid the
// curve is evaluated on. Dissolution curves return fractions in [0, 1].
package model
