// SPDX-License-Identifier: MIT
// Package: ivivc/internal/cli
//
// analysis.go — level-a, level-b and level-c commands.

package cli

import (
	"github.com/spf13/cobra"
)

func newLevelACmd(a *app) *cobra.Command {
	var sf scenarioFlags
	cmd := &cobra.Command{
		Use:   "level-a",
		Short: "Point-to-point correlation on the ER tablet scenario",
		Long: `Generate the three extended-release formulations, deconvolve absorption
with Wagner–Nelson, fit % absorbed on % dissolved and validate the internal
predictions of Cmax and AUC.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sf.config()
			if err != nil {
				return err
			}
			rep, err := a.engine.RunLevelA(sc, sf.seed)
			if err != nil {
				return err
			}
			a.logWarnings(rep.Warnings())
			if a.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			return renderLevelA(cmd.OutOrStdout(), rep)
		},
	}
	sf.register(cmd.Flags())

	return cmd
}

func newLevelBCmd(a *app) *cobra.Command {
	var sf scenarioFlags
	cmd := &cobra.Command{
		Use:   "level-b",
		Short: "MDT vs MRT correlation, with the equal-MDT pitfall",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sf.config()
			if err != nil {
				return err
			}
			rep, err := a.engine.RunLevelB(sc, sf.seed)
			if err != nil {
				return err
			}
			a.logWarnings(rep.Warnings())
			if a.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			return renderLevelB(cmd.OutOrStdout(), rep)
		},
	}
	sf.register(cmd.Flags())

	return cmd
}

func newLevelCCmd(a *app) *cobra.Command {
	var sf scenarioFlags
	cmd := &cobra.Command{
		Use:   "level-c",
		Short: "Single-point metric matrix on the depot scenario",
		Long: `Build the three microsphere depot formulations, regress every in vivo
metric on every in vitro metric and compare dissolution profiles with f1/f2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sf.config()
			if err != nil {
				return err
			}
			rep, err := a.engine.RunLevelC(sc, sf.seed)
			if err != nil {
				return err
			}
			a.logWarnings(rep.Warnings())
			if a.output == OutputJSON {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			return renderLevelC(cmd.OutOrStdout(), rep)
		},
	}
	sf.register(cmd.Flags())

	return cmd
}
