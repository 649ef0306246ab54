// SPDX-License-Identifier: MIT
// Package: ivivc/profile
//
// scenario.go — reference teaching scenarios.
//
//   Level A  — three extended-release oral tablets (first-order release,
//              ka = 1.5·k) plus an immediate-release reference; ke = 0.10 h⁻¹,
//              Vd = 50 L, D = 100 mg.
//   Level B  — the pathological pair: biphasic P1 and first-order P2 with
//              nearly equal MDT but different PK.
//   Level C  — PLGA microsphere depot A/B/C (Weibull release with smoothed
//              burst, bi-exponential depot PK normalised to Cmax of A) plus
//              a solution reference for f1/f2.
//
// All times are hours.

package profile

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// One-compartment constants shared by the oral scenarios.
const (
	ScenarioDose = 100.0 // mg
	ScenarioVd   = 50.0  // L
	ScenarioKe   = 0.10  // 1/h

	absorptionFactor = 1.5 // ka = 1.5·k for the ER tablets
	irRate           = 5.0 // IR reference dissolution and absorption rate
)

// Sampling schedules of the scenarios.
var (
	levelADissolutionTimes = []float64{0, 0.25, 0.5, 1, 2, 3, 4, 6, 8, 10, 12, 16, 20, 24}
	levelAPKTimes          = []float64{0, 0.5, 1, 2, 3, 4, 6, 8, 10, 12, 16, 20, 24}
	levelCInVitroTimes     = []float64{0, 1, 6, 24, 72, 168, 336, 504, 672, 720}
	levelCPKTimes          = []float64{0.5, 1, 2, 4, 6, 8, 12, 24, 48, 72, 168, 336, 504, 672, 840}
)

// DefaultLevelARates are the F1 (fast), F2 (medium), F3 (slow) release rates.
var DefaultLevelARates = []float64{0.30, 0.15, 0.08}

// ScenarioConfig holds the knobs shared by the scenario constructors.
type ScenarioConfig struct {
	DissolutionNoise float64   // sigma on fraction released
	PKNoise          float64   // sigma on concentration
	Rates            []float64 // Level A release rates; empty → DefaultLevelARates
}

// DefaultScenarioConfig is noise-free with the default Level A rates.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{Rates: append([]float64(nil), DefaultLevelARates...)}
}

// Validate reports ErrDomain for negative or non-finite noise and for
// non-positive rates.
func (c ScenarioConfig) Validate() error {
	const op = "profile.ScenarioConfig"
	if !finiteNonNegative(c.DissolutionNoise) {
		return diag.ParamError(op, "dissolution noise", diag.ErrDomain, "got %g", c.DissolutionNoise)
	}
	if !finiteNonNegative(c.PKNoise) {
		return diag.ParamError(op, "pk noise", diag.ErrDomain, "got %g", c.PKNoise)
	}
	for i, r := range c.Rates {
		if !finiteNonNegative(r) || r == 0 {
			return diag.ParamError(op, fmt.Sprintf("rates[%d]", i), diag.ErrDomain, "got %g", r)
		}
	}

	return nil
}

func finiteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

func (c ScenarioConfig) dissolutionOpts() []Option {
	if c.DissolutionNoise > 0 {
		return []Option{WithNoise(c.DissolutionNoise)}
	}

	return nil
}

func (c ScenarioConfig) pkOpts() []Option {
	if c.PKNoise > 0 {
		return []Option{WithNoise(c.PKNoise)}
	}

	return nil
}

// Scenario is a buildable set of formulation specs.
type Scenario struct {
	Name      string
	Specs     []Spec
	Reference *Spec // IR or solution reference; nil if none
	// NormalizeTo names the formulation whose observed PK Cmax divides every
	// PK series after generation; empty leaves concentrations as generated.
	NormalizeTo string
	// One-compartment context; zero for depot scenarios.
	Dose, Vd, Ke float64
}

// Built is a generated scenario.
type Built struct {
	Name         string
	Formulations []Formulation // sorted by ID
	Reference    *Formulation
}

// Build generates every formulation (concurrently) and the reference.
func (s Scenario) Build(seed int64) (Built, error) {
	const op = "profile.Scenario.Build"
	fs, err := BuildAll(s.Specs, seed)
	if err != nil {
		return Built{}, err
	}
	out := Built{Name: s.Name, Formulations: fs}

	if s.Reference != nil {
		ref, err := Build(*s.Reference, seed)
		if err != nil {
			return Built{}, err
		}
		out.Reference = &ref
	}

	if s.NormalizeTo != "" {
		var base *Formulation
		for i := range fs {
			if fs[i].id == s.NormalizeTo {
				base = &fs[i]
			}
		}
		if base == nil || !base.HasPK() {
			return Built{}, diag.WithSubject(op, s.NormalizeTo,
				diag.Errorf(op, diag.ErrDomain, "normalisation formulation missing or without PK"))
		}
		cmax, _, err := series.Cmax(base.pk)
		if err != nil {
			return Built{}, diag.WithSubject(op, s.NormalizeTo, err)
		}
		if cmax <= 0 {
			return Built{}, diag.WithSubject(op, s.NormalizeTo,
				diag.Errorf(op, diag.ErrDomain, "non-positive Cmax %g", cmax))
		}
		for i := range fs {
			if fs[i].HasPK() {
				fs[i] = fs[i].WithPK(fs[i].pk.Scale(1 / cmax))
			}
		}
	}

	return out, nil
}

// LevelAScenario returns the ER oral tablet scenario.
func LevelAScenario(cfg ScenarioConfig) Scenario {
	rates := cfg.Rates
	if len(rates) == 0 {
		rates = DefaultLevelARates
	}
	diss := series.MustExplicit(levelADissolutionTimes...)
	pk := series.MustExplicit(levelAPKTimes...)

	oral := func(ka float64) Params {
		return Params{ParamDose: ScenarioDose, ParamKa: ka, ParamKe: ScenarioKe, ParamVd: ScenarioVd}
	}
	spec := func(id string, k, ka float64) Spec {
		return Spec{
			ID:          id,
			Dissolution: Channel{Kind: FirstOrder, Params: Params{ParamFmax: 1, ParamK: k}, Grid: diss, Options: cfg.dissolutionOpts()},
			PK:          Channel{Kind: OralPK, Params: oral(ka), Grid: pk, Options: cfg.pkOpts()},
		}
	}

	specs := make([]Spec, len(rates))
	for i, k := range rates {
		specs[i] = spec(fmt.Sprintf("F%d", i+1), k, absorptionFactor*k)
	}
	ref := spec("IR", irRate, irRate)

	return Scenario{
		Name:      "level-a",
		Specs:     specs,
		Reference: &ref,
		Dose:      ScenarioDose,
		Vd:        ScenarioVd,
		Ke:        ScenarioKe,
	}
}

// LevelBPathological returns the equal-MDT pair on 100 points over 0–24 h.
func LevelBPathological(cfg ScenarioConfig) Scenario {
	g, err := series.Regular(0, 24, 24.0/99)
	if err != nil {
		panic(err) // constant arguments
	}
	oral := func(ka float64) Channel {
		return Channel{
			Kind:    OralPK,
			Params:  Params{ParamDose: ScenarioDose, ParamKa: ka, ParamKe: ScenarioKe, ParamVd: ScenarioVd},
			Grid:    g,
			Options: cfg.pkOpts(),
		}
	}

	return Scenario{
		Name: "level-b-pathological",
		Specs: []Spec{
			{
				ID:          "P1",
				Dissolution: Channel{Kind: Biphasic, Params: Params{ParamFastFrac: 0.4, ParamKFast: 2.0, ParamKSlow: 0.05}, Grid: g, Options: cfg.dissolutionOpts()},
				PK:          oral(0.8),
			},
			{
				ID:          "P2",
				Dissolution: Channel{Kind: FirstOrder, Params: Params{ParamFmax: 1, ParamK: 0.16}, Grid: g, Options: cfg.dissolutionOpts()},
				PK:          oral(0.25),
			},
		},
		Dose: ScenarioDose,
		Vd:   ScenarioVd,
		Ke:   ScenarioKe,
	}
}

// LevelCScenario returns the PLGA depot scenario.
func LevelCScenario(cfg ScenarioConfig) Scenario {
	iv := series.MustExplicit(levelCInVitroTimes...)
	pk := series.MustExplicit(levelCPKTimes...)

	type plga struct {
		id                               string
		fmax, tau, beta, burst, burstTau float64
		a1, alpha1, ka, a2, alpha2       float64
	}
	rows := []plga{
		{"A", 0.88, 300, 0.75, 0.15, 8, 0.90, 0.004, 1.2, 0.08, 0.0006},
		{"B", 0.68, 420, 0.70, 0.07, 10, 0.60, 0.0025, 0.20, 0.20, 0.0005},
		{"C", 0.58, 500, 0.68, 0.045, 11, 0.25, 0.0012, 0.06, 0.35, 0.0003},
	}

	specs := make([]Spec, len(rows))
	for i, r := range rows {
		specs[i] = Spec{
			ID: r.id,
			Dissolution: Channel{Kind: Weibull, Grid: iv, Options: cfg.dissolutionOpts(), Params: Params{
				ParamFmax: r.fmax, ParamTau: r.tau, ParamBeta: r.beta, ParamBurst: r.burst, ParamBurstTau: r.burstTau,
			}},
			PK: Channel{Kind: DepotPK, Grid: pk, Options: cfg.pkOpts(), Params: Params{
				ParamA1: r.a1, ParamAlpha1: r.alpha1, ParamKa: r.ka, ParamA2: r.a2, ParamAlpha2: r.alpha2,
			}},
		}
	}
	solution := Spec{
		ID:          "Solution",
		Dissolution: Channel{Kind: FirstOrder, Params: Params{ParamFmax: 1, ParamK: 0.5}, Grid: iv},
	}

	return Scenario{
		Name:        "level-c",
		Specs:       specs,
		Reference:   &solution,
		NormalizeTo: "A",
	}
}
