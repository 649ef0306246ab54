// SPDX-License-Identifier: MIT
// Package: ivivc/internal/cli
//
// scenario.go — scenario flags shared by the analysis commands.

package cli

import (
	"github.com/spf13/pflag"

	"github.com/katalvlaran/ivivc/profile"
)

// scenarioFlags are the knobs shared by the analysis commands.
type scenarioFlags struct {
	seed             int64
	dissolutionNoise float64
	pkNoise          float64
	rates            []float64
}

func (f *scenarioFlags) register(fs *pflag.FlagSet) {
	fs.Int64Var(&f.seed, "seed", 1, "Noise seed")
	fs.Float64Var(&f.dissolutionNoise, "dissolution-noise", 0, "Sigma of noise on fraction released")
	fs.Float64Var(&f.pkNoise, "pk-noise", 0, "Sigma of noise on concentrations")
	fs.Float64SliceVar(&f.rates, "rates", profile.DefaultLevelARates, "Level A release rates (1/h)")
}

func (f *scenarioFlags) config() (profile.ScenarioConfig, error) {
	sc := profile.ScenarioConfig{
		DissolutionNoise: f.dissolutionNoise,
		PKNoise:          f.pkNoise,
		Rates:            append([]float64(nil), f.rates...),
	}

	return sc, sc.Validate()
}
