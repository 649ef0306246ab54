package validation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/deconv"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/model"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
	"github.com/katalvlaran/ivivc/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = validation.PKContext{Dose: 100, Vd: 50, Ke: 0.1}

// TestPredictExternal_IdentityLine: when dissolution equals the absorbed
// fraction and the line is the identity, the prediction reproduces the data.
func TestPredictExternal_IdentityLine(t *testing.T) {
	pk, err := model.NewOralPK(model.OralParams{Dose: 100, Ka: 0.5, Ke: 0.1, Vd: 50})
	require.NoError(t, err)
	g, err := series.Regular(0, 36, 0.05)
	require.NoError(t, err)
	c, err := series.FromGrid(g, series.Hours, pk.At)
	require.NoError(t, err)
	ap, err := deconv.WagnerNelson(c, 0.1)
	require.NoError(t, err)

	f, err := profile.NewFormulation("X", nil, ap.Fa, c)
	require.NoError(t, err)

	p, err := validation.PredictExternal(f, correlation.Line{Slope: 1}, ctx)
	require.NoError(t, err)
	require.Len(t, p.Entries, 2)
	for _, e := range p.Entries {
		pe, err := validation.PercentError(e.Predicted, e.Observed)
		require.NoError(t, err)
		assert.Less(t, math.Abs(pe), 1.0, "%s %%PE", e.Metric)
	}
	assert.True(t, p.Predicted.SameGrid(c))

	res, err := validation.ValidateExternal(p.Entries, validation.DefaultThresholds())
	require.NoError(t, err)
	assert.True(t, res.Pass)
}

func TestPredictInternal_LevelAScenario(t *testing.T) {
	b, err := profile.LevelAScenario(profile.DefaultScenarioConfig()).Build(1)
	require.NoError(t, err)
	la, err := correlation.LevelA(b.Formulations, correlation.DefaultOptions())
	require.NoError(t, err)

	ps, err := validation.PredictInternal(b.Formulations, la.Line, ctx)
	require.NoError(t, err)
	require.Len(t, ps, 3)
	es := validation.Entries(ps)
	require.Len(t, es, 6)

	for _, p := range ps {
		vs := p.FaPred.Values()
		assert.Equal(t, 0.0, vs[0], "nothing dissolved, nothing absorbed")
		for _, v := range vs {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}

	res, err := validation.Validate(es, validation.DefaultThresholds())
	require.NoError(t, err)
	assert.Len(t, res.Metrics, 2)
	for _, o := range res.Outcomes {
		assert.False(t, math.IsNaN(o.PE))
	}
}

func TestPredict_Errors(t *testing.T) {
	_, err := validation.PredictInternal(nil, correlation.Line{Slope: 1}, ctx)
	assert.ErrorIs(t, err, diag.ErrInsufficientData)

	b, err := profile.LevelCScenario(profile.DefaultScenarioConfig()).Build(1)
	require.NoError(t, err)
	_, err = validation.PredictExternal(*b.Reference, correlation.Line{Slope: 1}, ctx)
	assert.ErrorIs(t, err, diag.ErrInsufficientData)

	_, err = validation.PredictExternal(b.Formulations[0], correlation.Line{Slope: 1}, validation.PKContext{Dose: 1, Vd: 1})
	assert.ErrorIs(t, err, diag.ErrDomain, "no ke anywhere")
}
