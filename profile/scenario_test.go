package profile_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelAScenario(t *testing.T) {
	sc := profile.LevelAScenario(profile.DefaultScenarioConfig())
	b, err := sc.Build(1)
	require.NoError(t, err)
	require.Len(t, b.Formulations, 3)
	require.NotNil(t, b.Reference)
	assert.Equal(t, "IR", b.Reference.ID())

	for _, f := range b.Formulations {
		assert.Equal(t, 14, f.Dissolution().Len())
		assert.Equal(t, 13, f.PK().Len())
		k, _ := f.Param(profile.ParamK)
		ka, _ := f.Param(profile.ParamKa)
		assert.InDelta(t, 1.5*k, ka, 1e-15)
	}
	assert.Equal(t, 0.1, sc.Ke)
}

func TestLevelBPathological_CloseMDT(t *testing.T) {
	b, err := profile.LevelBPathological(profile.DefaultScenarioConfig()).Build(1)
	require.NoError(t, err)
	require.Len(t, b.Formulations, 2)

	p1, p2 := b.Formulations[0], b.Formulations[1]
	assert.Equal(t, 100, p1.Dissolution().Len())
	assert.True(t, p1.Dissolution().SameGrid(p2.Dissolution()))

	m1, err := series.MDT(p1.Dissolution())
	require.NoError(t, err)
	m2, err := series.MDT(p2.Dissolution())
	require.NoError(t, err)
	assert.InDelta(t, m1, m2, 1.0, "MDTs are close")
}

func TestLevelCScenario_Normalised(t *testing.T) {
	b, err := profile.LevelCScenario(profile.DefaultScenarioConfig()).Build(1)
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, profile.IDs(b.Formulations))

	cmax, _, err := series.Cmax(b.Formulations[0].PK())
	require.NoError(t, err)
	assert.InDelta(t, 1.0, cmax, 1e-12)

	require.NotNil(t, b.Reference)
	assert.False(t, b.Reference.HasPK())
	assert.True(t, b.Reference.Dissolution().SameGrid(b.Formulations[0].Dissolution()))

	// Weibull with smoothed burst starts at zero and stays under the plateau.
	for _, f := range b.Formulations {
		vs := f.Dissolution().Values()
		assert.Equal(t, 0.0, vs[0])
		fmax, _ := f.Param(profile.ParamFmax)
		assert.LessOrEqual(t, vs[len(vs)-1], fmax)
	}
}

func TestScenarioConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  profile.ScenarioConfig
		ok   bool
	}{
		{"default", profile.DefaultScenarioConfig(), true},
		{"noisy", profile.ScenarioConfig{DissolutionNoise: 0.02, PKNoise: 0.05}, true},
		{"negative noise", profile.ScenarioConfig{PKNoise: -1}, false},
		{"inf noise", profile.ScenarioConfig{DissolutionNoise: math.Inf(1)}, false},
		{"zero rate", profile.ScenarioConfig{Rates: []float64{0.3, 0}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, diag.ErrDomain)
		})
	}
}
