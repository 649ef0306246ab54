// SPDX-License-Identifier: MIT
// Package: ivivc/internal/cli
//
// validate.go — validate command for observed vs predicted pairs.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ivivc"
	"github.com/katalvlaran/ivivc/validation"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		predicted, observed []float64
		th                  = validation.DefaultThresholds()
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Classify predicted vs observed values by percent error",
		Long: `Compute PE = (predicted − observed)/observed × 100 for each pair and apply
the mean and individual |PE| criteria.

Examples:
  ivivc validate --predicted 110,95 --observed 100,100
  ivivc validate --predicted 130 --observed 100 --max-individual 35`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := ivivc.DefaultConfig()
			cfg.Thresholds = th
			res, err := ivivc.NewEngine(cfg).Validate(predicted, observed)
			if err != nil {
				return err
			}
			if !res.Pass {
				a.log.Warn("validation failed", "mean_abs_pe", res.MeanAbsPE, "outliers", res.Outliers)
			}
			if a.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}

			return renderValidation(cmd.OutOrStdout(), res)
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&predicted, "predicted", nil, "Predicted values")
	f.Float64SliceVar(&observed, "observed", nil, "Observed values")
	f.Float64Var(&th.MeanAbsPE, "max-mean", th.MeanAbsPE, "Mean |PE| limit (%)")
	f.Float64Var(&th.IndividualAbsPE, "max-individual", th.IndividualAbsPE, "Individual |PE| limit (%)")
	_ = cmd.MarkFlagRequired("predicted")
	_ = cmd.MarkFlagRequired("observed")

	return cmd
}
