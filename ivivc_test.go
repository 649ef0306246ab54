package ivivc_test

import (
	"testing"

	"github.com/katalvlaran/ivivc"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/model"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
	"github.com/katalvlaran/ivivc/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_EndToEnd(t *testing.T) {
	g, err := series.Regular(0, 24, 0.5)
	require.NoError(t, err)
	c, err := ivivc.GenerateProfile(profile.OralPK, profile.Params{
		profile.ParamDose: 100, profile.ParamKa: 1, profile.ParamKe: 0.1, profile.ParamVd: 50,
	}, g, 1)
	require.NoError(t, err)

	ap, err := ivivc.Deconvolve(c, 0.1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ap.Fa.Last().V)

	h, err := model.NewImpulseResponse(0.1, 50)
	require.NoError(t, err)
	in, err := ivivc.NewEngine(ivivc.DefaultConfig()).DeconvolvePointArea(c, h)
	require.NoError(t, err)
	assert.True(t, in.Monotone())
	assert.InDelta(t, ap.Fa.Point(4).V, in.Fa.Point(4).V, 5e-3)

	b, err := profile.LevelAScenario(profile.DefaultScenarioConfig()).Build(1)
	require.NoError(t, err)
	a, err := ivivc.ComputeLevelA(b.Formulations)
	require.NoError(t, err)
	assert.Greater(t, a.R2, 0.9)
	lb, err := ivivc.ComputeLevelB(b.Formulations)
	require.NoError(t, err)
	assert.Equal(t, 3, lb.N)

	cb, err := profile.LevelCScenario(profile.DefaultScenarioConfig()).Build(1)
	require.NoError(t, err)
	m, err := ivivc.ComputeLevelC(cb.Formulations[:2], nil, nil)
	require.NoError(t, err)
	assert.True(t, diag.Has(m.Warnings, diag.InsufficientFormulations))

	f1, f2, err := ivivc.SimilarityF1F2(b.Formulations[0].Dissolution(), b.Formulations[0].Dissolution())
	require.NoError(t, err)
	assert.Equal(t, 0.0, f1)
	assert.Equal(t, 100.0, f2)
}

func TestFacade_Validate(t *testing.T) {
	res, err := ivivc.Validate([]float64{110}, []float64{100})
	require.NoError(t, err)
	assert.True(t, res.Pass)

	res, err = ivivc.Validate([]float64{120, 100, 100}, []float64{100, 100, 100})
	require.NoError(t, err)
	assert.False(t, res.Pass)
	assert.Equal(t, []string{"#1"}, res.Outliers)

	_, err = ivivc.Validate([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ivivc.ErrDomain)
}

// TestEngine_CustomThresholds substitutes looser limits.
func TestEngine_CustomThresholds(t *testing.T) {
	cfg := ivivc.DefaultConfig()
	cfg.Thresholds = validation.Thresholds{MeanAbsPE: 25, IndividualAbsPE: 30}
	e := ivivc.NewEngine(cfg)

	res, err := e.Validate([]float64{120}, []float64{100})
	require.NoError(t, err)
	assert.True(t, res.Pass)
	assert.Equal(t, cfg, e.Config())
}

func TestEngine_Runs(t *testing.T) {
	e := ivivc.NewEngine(ivivc.DefaultConfig())
	sc := profile.DefaultScenarioConfig()

	a, err := e.RunLevelA(sc, 1)
	require.NoError(t, err)
	assert.Len(t, a.Predictions, 3)
	assert.Len(t, a.Validation.Outcomes, 6)

	b, err := e.RunLevelB(sc, 1)
	require.NoError(t, err)
	assert.True(t, diag.Has(b.Warnings(), diag.InsufficientFormulations))
	assert.False(t, diag.Has(b.Correlation.Warnings, diag.InsufficientFormulations))

	c, err := e.RunLevelC(sc, 1)
	require.NoError(t, err)
	require.NotNil(t, c.Best)
	assert.Len(t, c.Similarity, 6) // 3 pairs + 3 vs solution
}
