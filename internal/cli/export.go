// SPDX-License-Identifier: MIT
// Package: ivivc/internal/cli
//
// export.go — export command writing report documents.

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/internal/report"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		sf       scenarioFlags
		level    string
		out      string
		compress bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write an analysis as a JSON report with a run ID",
		Long: `Run one level and write the result as a report document. With --compress
the document is a snappy framed stream.

Examples:
  ivivc export --level a > level-a.json
  ivivc export --level c --compress --out level-c.json.sz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := sf.config()
			if err != nil {
				return err
			}

			var (
				payload  any
				warnings []diag.Warning
			)
			switch level {
			case "a", "A":
				rep, err := a.engine.RunLevelA(sc, sf.seed)
				if err != nil {
					return err
				}
				payload, warnings = rep, rep.Warnings()
			case "b", "B":
				rep, err := a.engine.RunLevelB(sc, sf.seed)
				if err != nil {
					return err
				}
				payload, warnings = rep, rep.Warnings()
			case "c", "C":
				rep, err := a.engine.RunLevelC(sc, sf.seed)
				if err != nil {
					return err
				}
				payload, warnings = rep, rep.Warnings()
			default:
				return fmt.Errorf("unknown level %q: want a, b or c", level)
			}

			ws := make([]string, len(warnings))
			for i, w := range warnings {
				ws[i] = w.String()
			}
			doc, err := report.New("level-"+level, sf.seed, payload, ws...)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create %s: %w", out, err)
				}
				defer f.Close()
				w = f
			}
			if err := report.Encode(w, doc, compress); err != nil {
				return err
			}
			a.log.Info("exported", "run_id", doc.RunID, "kind", doc.Kind, "compressed", compress)

			return nil
		},
	}
	sf.register(cmd.Flags())
	f := cmd.Flags()
	f.StringVarP(&level, "level", "l", "a", "Level to export: a, b, c")
	f.StringVar(&out, "out", "-", "Output file, - for stdout")
	f.BoolVar(&compress, "compress", false, "Snappy-frame the document")

	return cmd
}
