package correlation_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, sc profile.Scenario) profile.Built {
	t.Helper()
	b, err := sc.Build(1)
	require.NoError(t, err)

	return b
}

func TestLevelA_Scenario(t *testing.T) {
	b := build(t, profile.LevelAScenario(profile.DefaultScenarioConfig()))

	res, err := correlation.LevelA(b.Formulations, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, correlation.LevelAName, res.Level)
	assert.Equal(t, 3*13, res.N, "every PK time has a dissolution sample")
	assert.Len(t, res.Points, res.N)
	assert.Greater(t, res.R2, 0.9)
	assert.Equal(t, 1, res.SlopeSign())
	assert.Equal(t, "F1", res.Points[0].Subject)

	var sum float64
	for _, r := range res.Residuals() {
		sum += r
	}
	assert.InDelta(t, 0, sum, 1e-9, "OLS residuals sum to zero")

	opts := correlation.DefaultOptions()
	opts.Alignment = correlation.AlignInterpolate
	interp, err := correlation.LevelA(b.Formulations, opts)
	require.NoError(t, err)
	assert.Equal(t, res.N, interp.N)
	assert.InDelta(t, res.Slope, interp.Slope, 1e-12)
}

// TestLevelA_Identity absorbs exactly as fast as it dissolves (k = ka), so
// % absorbed equals % dissolved and the line is the identity.
func TestLevelA_Identity(t *testing.T) {
	g, err := series.Regular(0, 24, 0.5)
	require.NoError(t, err)

	var fs []profile.Formulation
	for i, k := range []float64{0.4, 0.7, 1.2} {
		f, err := profile.Build(profile.Spec{
			ID:          fmt.Sprintf("K%d", i+1),
			Dissolution: profile.Channel{Kind: profile.FirstOrder, Params: profile.Params{profile.ParamFmax: 1, profile.ParamK: k}, Grid: g},
			PK: profile.Channel{Kind: profile.OralPK, Grid: g, Params: profile.Params{
				profile.ParamDose: 100, profile.ParamKa: k, profile.ParamKe: 0.1, profile.ParamVd: 50,
			}},
		}, 1)
		require.NoError(t, err)
		fs = append(fs, f)
	}

	res, err := correlation.LevelA(fs, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3*49, res.N)
	assert.InDelta(t, 1.0, res.Slope, 1e-3)
	assert.InDelta(t, 0.0, res.Intercept, 0.05)
	assert.InDelta(t, 1.0, res.R2, 1e-4)
}

func TestLevelA_ExactAlignmentDropsUnmatched(t *testing.T) {
	g := series.MustExplicit(0, 1, 2, 3)
	pkGrid, err := series.Regular(0, 24, 0.5)
	require.NoError(t, err)
	mk := func(id string, k float64) profile.Spec {
		return profile.Spec{
			ID:          id,
			Dissolution: profile.Channel{Kind: profile.FirstOrder, Grid: g, Params: profile.Params{profile.ParamFmax: 1, profile.ParamK: k}},
			// no "ke" in params: ke comes from Options
			PK: profile.Channel{Kind: profile.DepotPK, Grid: pkGrid, Params: profile.Params{
				profile.ParamA1: 1, profile.ParamAlpha1: 0.1, profile.ParamKa: 1.5 * k, profile.ParamA2: 0, profile.ParamAlpha2: 1,
			}},
		}
	}
	fs, err := profile.BuildAll([]profile.Spec{mk("X", 0.3), mk("Y", 0.6)}, 1)
	require.NoError(t, err)

	opts := correlation.DefaultOptions()
	opts.Ke = 0.1
	res, err := correlation.LevelA(fs, opts)
	require.NoError(t, err)
	assert.Equal(t, 8, res.N)
	for _, p := range res.Points {
		assert.Contains(t, []float64{0, 1, 2, 3}, p.T)
	}
}

func TestResolveKe(t *testing.T) {
	b := build(t, profile.LevelAScenario(profile.DefaultScenarioConfig()))
	f := b.Formulations[0]

	ke, err := correlation.ResolveKe(f, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.1, ke, "from the formulation parameters")

	opts := correlation.DefaultOptions()
	opts.Ke = 0.2
	ke, err = correlation.ResolveKe(f, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.2, ke)

	bare, err := profile.NewFormulation("bare", nil, f.Dissolution(), f.PK())
	require.NoError(t, err)
	ke, err = correlation.ResolveKe(bare, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 0.1, ke, 0.02, "terminal-phase estimate")
}

func TestLevelA_Errors(t *testing.T) {
	_, err := correlation.LevelA(nil, correlation.DefaultOptions())
	assert.ErrorIs(t, err, diag.ErrInsufficientData)

	b := build(t, profile.LevelCScenario(profile.DefaultScenarioConfig()))
	_, err = correlation.LevelA([]profile.Formulation{*b.Reference}, correlation.DefaultOptions())
	assert.ErrorIs(t, err, diag.ErrInsufficientData, "reference has no PK")
}

func TestLevelB_Scenario(t *testing.T) {
	b := build(t, profile.LevelAScenario(profile.DefaultScenarioConfig()))

	res, err := correlation.LevelB(b.Formulations, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, res.N)
	require.Len(t, res.Moments, 3)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, 1, res.SlopeSign())
	assert.Greater(t, res.R2, 0.9)
	for i := 1; i < 3; i++ {
		assert.Greater(t, res.Moments[i].MDT, res.Moments[i-1].MDT, "slower release, longer MDT")
		assert.Greater(t, res.Moments[i].MRT, res.Moments[i-1].MRT)
		assert.Greater(t, res.Moments[i].VDT, 0.0)
	}
}

// TestLevelB_Pathological fits the two-formulation pair: the line is exact
// and flagged.
func TestLevelB_Pathological(t *testing.T) {
	b := build(t, profile.LevelBPathological(profile.DefaultScenarioConfig()))

	res, err := correlation.LevelB(b.Formulations, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.R2, 1e-12)
	assert.True(t, diag.Has(res.Warnings, diag.InsufficientFormulations))
	assert.NotEqual(t, res.Moments[0].MRT, res.Moments[1].MRT)
}

// TestLevelB_EqualMDT pairs a formulation with a twin that dissolves
// identically but is absorbed differently: the moments are reported, the
// line is undefined and nothing fails.
func TestLevelB_EqualMDT(t *testing.T) {
	b := build(t, profile.LevelAScenario(profile.DefaultScenarioConfig()))
	f1, f2 := b.Formulations[0], b.Formulations[1]
	twin, err := profile.NewFormulation("twin", f2.Params(), f1.Dissolution(), f2.PK())
	require.NoError(t, err)

	res, err := correlation.LevelB([]profile.Formulation{f1, twin}, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, res.Undefined)
	assert.Contains(t, res.Detail, "MDT=")
	assert.Equal(t, 2, res.N)
	assert.Zero(t, res.R2)
	require.Len(t, res.Moments, 2)
	require.Len(t, res.Points, 2)
	assert.Equal(t, res.Moments[0].MDT, res.Moments[1].MDT)
	assert.NotEqual(t, res.Moments[0].MRT, res.Moments[1].MRT)
	assert.True(t, diag.Has(res.Warnings, diag.InsufficientFormulations))

	// next to formulations with distinct MDT the twin is just a residual
	res, err = correlation.LevelB(append(b.Formulations, twin), correlation.DefaultOptions())
	require.NoError(t, err)
	assert.False(t, res.Undefined)
	assert.Equal(t, 4, res.N)
	assert.NotZero(t, res.Points[3].Residual)
}

func TestLevelC_Scenario(t *testing.T) {
	b := build(t, profile.LevelCScenario(profile.DefaultScenarioConfig()))

	m, err := correlation.LevelC(b.Formulations, nil, nil, correlation.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, m.Rows, 8)
	require.Len(t, m.Cols, 3)
	require.Len(t, m.Cells, 24)
	assert.Empty(t, m.Warnings)
	assert.Equal(t, []string{"A", "B", "C"}, m.Subjects)

	c := m.At(6, 1)
	assert.Equal(t, "MDT", c.InVitro)
	assert.Equal(t, "MRT", c.InVivo)
	assert.Equal(t, correlation.LevelCName, c.Level)
	assert.Len(t, c.Points, 3)

	for i := range m.Rows {
		for j := range m.Cols {
			cell := m.At(i, j)
			assert.Equal(t, m.Rows[i], cell.InVitro)
			assert.Equal(t, m.Cols[j], cell.InVivo)
		}
	}

	best, ok := m.Best()
	require.True(t, ok)
	for _, cell := range m.Cells {
		if !cell.Undefined {
			assert.LessOrEqual(t, cell.R2, best.R2)
		}
	}

	again, err := correlation.LevelC(b.Formulations, nil, nil, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, m, again, "layout independent of scheduling")
}

// TestLevelC_TwoFormulations checks the trivial r² = 1 with a warning.
func TestLevelC_TwoFormulations(t *testing.T) {
	b := build(t, profile.LevelCScenario(profile.DefaultScenarioConfig()))

	m, err := correlation.LevelC(b.Formulations[:2], nil, nil, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, diag.Has(m.Warnings, diag.InsufficientFormulations))
	for _, c := range m.Cells {
		require.False(t, c.Undefined, "%s/%s", c.InVitro, c.InVivo)
		assert.InDelta(t, 1.0, c.R2, 1e-9, "%s/%s", c.InVitro, c.InVivo)
		assert.True(t, diag.Has(c.Warnings, diag.InsufficientFormulations))
	}
}

func TestLevelC_UndefinedCell(t *testing.T) {
	b := build(t, profile.LevelCScenario(profile.DefaultScenarioConfig()))
	constant := correlation.Metric{Name: "const", Eval: func(profile.Formulation) (float64, error) { return 1, nil }}

	m, err := correlation.LevelC(b.Formulations, []correlation.Metric{constant, correlation.MDTMetric()},
		[]correlation.Metric{correlation.AUCMetric()}, correlation.DefaultOptions())
	require.NoError(t, err)
	assert.True(t, m.At(0, 0).Undefined)
	assert.NotEmpty(t, m.At(0, 0).Detail)
	assert.False(t, m.At(1, 0).Undefined)
}

func TestLevelC_Errors(t *testing.T) {
	b := build(t, profile.LevelCScenario(profile.DefaultScenarioConfig()))

	_, err := correlation.LevelC(b.Formulations[:1], nil, nil, correlation.DefaultOptions())
	assert.ErrorIs(t, err, diag.ErrInsufficientData)

	withRef := append(append([]profile.Formulation(nil), b.Formulations...), *b.Reference)
	_, err = correlation.LevelC(withRef, nil, nil, correlation.DefaultOptions())
	require.ErrorIs(t, err, diag.ErrInsufficientData)
	var de *diag.Error
	require.ErrorAs(t, err, &de)
	assert.Contains(t, de.Subject, "Solution")
}

// TestReleaseAt_Units reads the same sample whether dissolution is recorded
// in hours or days.
func TestReleaseAt_Units(t *testing.T) {
	hours, err := series.New([]float64{0, 6, 24, 72}, []float64{0, 0.2, 0.5, 0.9}, series.Hours)
	require.NoError(t, err)
	days := hours.InUnit(series.Days)
	require.Equal(t, series.Days, days.Unit())

	m := correlation.ReleaseAt("%Rel 24h", 24)
	for _, diss := range []series.TimeSeries{hours, days} {
		f, err := profile.NewFormulation("F", nil, diss, series.TimeSeries{})
		require.NoError(t, err)
		v, err := m.Eval(f)
		require.NoError(t, err)
		assert.InDelta(t, 50.0, v, 1e-12, "unit %s", diss.Unit())
	}
}
