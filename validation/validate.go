// SPDX-License-Identifier: MIT
// Package: ivivc/validation
//
// validate.go — %PE and threshold classification.

package validation

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/ivivc/diag"
)

// Metric names used by the predictors.
const (
	MetricCmax = "Cmax"
	MetricAUC  = "AUC"
)

// Mode tells internal from external validation.
type Mode string

const (
	Internal Mode = "internal"
	External Mode = "external"
)

// Thresholds are the acceptance limits in percent.
type Thresholds struct {
	MeanAbsPE       float64 `json:"mean_abs_pe"`
	IndividualAbsPE float64 `json:"individual_abs_pe"`
}

// DefaultThresholds returns mean |%PE| ≤ 10 and individual |%PE| ≤ 15.
func DefaultThresholds() Thresholds {
	return Thresholds{MeanAbsPE: 10, IndividualAbsPE: 15}
}

func (t Thresholds) validate() error {
	if !(t.MeanAbsPE > 0) || !(t.IndividualAbsPE > 0) ||
		math.IsInf(t.MeanAbsPE, 0) || math.IsInf(t.IndividualAbsPE, 0) {
		return diag.Errorf("validation.Thresholds", diag.ErrDomain,
			"thresholds must be finite and > 0 (mean %g, individual %g)", t.MeanAbsPE, t.IndividualAbsPE)
	}

	return nil
}

// Entry is one prediction to check.
type Entry struct {
	Subject   string  `json:"subject"`
	Metric    string  `json:"metric,omitempty"`
	Predicted float64 `json:"predicted"`
	Observed  float64 `json:"observed"`
}

// Outcome is a checked entry.
type Outcome struct {
	Entry
	PE    float64 `json:"pe"`
	AbsPE float64 `json:"abs_pe"`
	Pass  bool    `json:"pass"`
}

// Summary aggregates the outcomes of one metric.
type Summary struct {
	Metric           string  `json:"metric,omitempty"`
	N                int     `json:"n"`
	MeanAbsPE        float64 `json:"mean_abs_pe"`
	MaxAbsPE         float64 `json:"max_abs_pe"`
	PassesMean       bool    `json:"passes_mean"`
	PassesIndividual bool    `json:"passes_individual"`
}

// Result is the validation verdict.
type Result struct {
	Mode       Mode       `json:"mode"`
	Thresholds Thresholds `json:"thresholds"`
	Outcomes   []Outcome  `json:"outcomes"`
	Metrics    []Summary  `json:"metrics"`
	// Aggregates over every outcome.
	MeanAbsPE        float64  `json:"mean_abs_pe"`
	MaxAbsPE         float64  `json:"max_abs_pe"`
	PassesMean       bool     `json:"passes_mean"`
	PassesIndividual bool     `json:"passes_individual"`
	Pass             bool     `json:"pass"`
	Outliers         []string `json:"outliers,omitempty"`
}

// Verdict renders "pass" or "fail".
func (r Result) Verdict() string {
	if r.Pass {
		return "pass"
	}

	return "fail"
}

// PercentError returns (pred − obs)/obs·100. obs = 0 is an ErrDomain.
func PercentError(pred, obs float64) (float64, error) {
	const op = "validation.PercentError"
	if math.IsNaN(pred) || math.IsInf(pred, 0) || math.IsNaN(obs) || math.IsInf(obs, 0) {
		return 0, diag.Errorf(op, diag.ErrDomain, "non-finite input (pred %g, obs %g)", pred, obs)
	}
	if obs == 0 {
		return 0, diag.Errorf(op, diag.ErrDomain, "observed value is zero")
	}

	return (pred - obs) / obs * 100, nil
}

// Validate runs the internal criteria over entries. The mean criterion is
// applied per metric; PassesMean holds when every metric passes.
func Validate(entries []Entry, th Thresholds) (Result, error) {
	return evaluate(Internal, entries, th)
}

// ValidateExternal applies the same criteria to a held-out formulation's
// entries.
func ValidateExternal(entries []Entry, th Thresholds) (Result, error) {
	return evaluate(External, entries, th)
}

func evaluate(mode Mode, entries []Entry, th Thresholds) (Result, error) {
	const op = "validation.Validate"
	if err := th.validate(); err != nil {
		return Result{}, err
	}
	if len(entries) == 0 {
		return Result{}, diag.Errorf(op, diag.ErrInsufficientData, "no entries")
	}

	res := Result{Mode: mode, Thresholds: th, Outcomes: make([]Outcome, len(entries))}
	abs := make([]float64, len(entries))
	var (
		order  []string
		groups = map[string][]float64{}
	)
	for i, e := range entries {
		pe, err := PercentError(e.Predicted, e.Observed)
		if err != nil {
			return Result{}, diag.WithSubject(op, label(e), err)
		}
		a := math.Abs(pe)
		pass := a <= th.IndividualAbsPE
		res.Outcomes[i] = Outcome{Entry: e, PE: pe, AbsPE: a, Pass: pass}
		abs[i] = a
		if !pass {
			res.Outliers = append(res.Outliers, label(e))
		}
		if _, ok := groups[e.Metric]; !ok {
			order = append(order, e.Metric)
		}
		groups[e.Metric] = append(groups[e.Metric], a)
	}

	res.PassesMean, res.PassesIndividual = true, true
	for _, m := range order {
		s := summarize(m, groups[m], th)
		res.Metrics = append(res.Metrics, s)
		res.PassesMean = res.PassesMean && s.PassesMean
		res.PassesIndividual = res.PassesIndividual && s.PassesIndividual
	}
	res.MeanAbsPE = floats.Sum(abs) / float64(len(abs))
	res.MaxAbsPE = floats.Max(abs)
	res.Pass = res.PassesMean && res.PassesIndividual

	return res, nil
}

func summarize(metric string, abs []float64, th Thresholds) Summary {
	s := Summary{Metric: metric, N: len(abs)}
	s.MeanAbsPE = floats.Sum(abs) / float64(len(abs))
	s.MaxAbsPE = floats.Max(abs)
	s.PassesMean = s.MeanAbsPE <= th.MeanAbsPE
	s.PassesIndividual = s.MaxAbsPE <= th.IndividualAbsPE

	return s
}

func label(e Entry) string {
	if e.Metric == "" {
		return e.Subject
	}

	return e.Subject + "/" + e.Metric
}
