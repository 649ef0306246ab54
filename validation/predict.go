// SPDX-License-Identifier: MIT
// Package: ivivc/validation
//
// predict.go — Level A based predictions of Cmax and AUC.
//
// For each formulation:
//   1) X(t) = % dissolved, interpolated at the PK sampling times (held at the
//      last dissolution value beyond the dissolution window)
//   2) Fa_pred(t) = clip((a + b·X(t))/100, 0, 1), and 0 where X(t) = 0
//   3) C_pred = Reconvolve(Fa_pred, ke, dose, vd)
//   4) entries for Cmax and AUC(0,tlast), predicted vs observed

package validation

import (
	"math"

	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/deconv"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
)

// PKContext carries the one-compartment constants for reconvolution.
type PKContext struct {
	Dose float64 `json:"dose"`
	Vd   float64 `json:"vd"`
	Ke   float64 `json:"ke"`
}

// Prediction is the predicted profile of one formulation plus its entries.
type Prediction struct {
	Subject   string            `json:"subject"`
	FaPred    series.TimeSeries `json:"fa_pred"`
	Predicted series.TimeSeries `json:"predicted"`
	Entries   []Entry           `json:"entries"`
}

// PredictInternal predicts every formulation used to build line.
func PredictInternal(fs []profile.Formulation, line correlation.Line, ctx PKContext) ([]Prediction, error) {
	if len(fs) == 0 {
		return nil, diag.Errorf("validation.PredictInternal", diag.ErrInsufficientData, "no formulations")
	}
	out := make([]Prediction, 0, len(fs))
	for _, f := range fs {
		p, err := PredictExternal(f, line, ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}

	return out, nil
}

// PredictExternal predicts a single formulation, typically one held out of
// the correlation.
func PredictExternal(f profile.Formulation, line correlation.Line, ctx PKContext) (Prediction, error) {
	const op = "validation.Predict"
	wrap := func(err error) (Prediction, error) { return Prediction{}, diag.WithSubject(op, f.ID(), err) }
	if !f.HasPK() {
		return wrap(diag.Errorf(op, diag.ErrInsufficientData, "formulation has no PK series"))
	}
	ke := ctx.Ke
	if ke <= 0 {
		if v, ok := f.Param(profile.ParamKe); ok {
			ke = v
		}
	}

	pk := f.PK()
	diss := f.Dissolution()
	last := diss.Last()
	fa, err := pk.Map(func(t, _ float64) float64 {
		x := last.V
		if t <= last.T {
			if v, err := diss.Interpolate(t); err == nil {
				x = v
			} else {
				x = 0 // before the first dissolution sample
			}
		}
		if x <= 0 {
			return 0
		}

		return math.Min(math.Max(line.Predict(100*x)/100, 0), 1)
	})
	if err != nil {
		return wrap(err)
	}

	pred, err := deconv.Reconvolve(fa, ke, ctx.Dose, ctx.Vd)
	if err != nil {
		return wrap(err)
	}

	pc, _, err := series.Cmax(pred)
	if err != nil {
		return wrap(err)
	}
	oc, _, err := series.Cmax(pk)
	if err != nil {
		return wrap(err)
	}
	pa, err := series.AUC(pred)
	if err != nil {
		return wrap(err)
	}
	oa, err := series.AUC(pk)
	if err != nil {
		return wrap(err)
	}

	return Prediction{
		Subject:   f.ID(),
		FaPred:    fa,
		Predicted: pred,
		Entries: []Entry{
			{Subject: f.ID(), Metric: MetricCmax, Predicted: pc, Observed: oc},
			{Subject: f.ID(), Metric: MetricAUC, Predicted: pa, Observed: oa},
		},
	}, nil
}

// Entries flattens the entries of ps in order.
func Entries(ps []Prediction) []Entry {
	var out []Entry
	for _, p := range ps {
		out = append(out, p.Entries...)
	}

	return out
}
