// SPDX-License-Identifier: MIT
// Package: ivivc/internal/cli
//
// root.go — root command, persistent flags and Execute.

// Package cli implements the ivivc command line.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ivivc"
	"github.com/katalvlaran/ivivc/internal/config"
	"github.com/katalvlaran/ivivc/internal/logging"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// app is the state shared by every subcommand of one root.
type app struct {
	cfg      config.Config
	log      *slog.Logger
	engine   *ivivc.Engine
	logLevel string
	output   string
	noColor  bool
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "ivivc",
		Short: "In vitro–in vivo correlation engine",
		Long: `ivivc builds synthetic dissolution and plasma profiles, deconvolves
absorption, and computes Level A, B and C correlations with f1/f2 similarity
and prediction-error validation.

Examples:
  ivivc level-a                       # Level A on the ER tablet scenario
  ivivc level-c --output json         # metric matrix as JSON
  ivivc validate --predicted 12,9 --observed 10,10
  ivivc export --level a --compress --out run.json.sz
  ivivc serve --addr :8080`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (default $IVIVC_LOG_LEVEL or info)")
	pf.StringVarP(&a.output, "output", "o", OutputText, "Output format: text, json")
	pf.BoolVar(&a.noColor, "no-color", false, "Disable coloured logs")

	root.AddCommand(
		newLevelACmd(a),
		newLevelBCmd(a),
		newLevelCCmd(a),
		newValidateCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	if a.logLevel == "" {
		a.logLevel = cfg.LogLevel
	}
	if a.output != OutputText && a.output != OutputJSON {
		return fmt.Errorf("unknown output format %q", a.output)
	}
	if a.log, err = logging.Setup(cmd.ErrOrStderr(), a.logLevel, a.noColor || cfg.NoColor); err != nil {
		return err
	}
	a.engine = ivivc.NewEngine(ivivc.DefaultConfig())

	return nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
