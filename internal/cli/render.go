// SPDX-License-Identifier: MIT
// Package: ivivc/internal/cli
//
// render.go — text and JSON rendering of analysis reports.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/ivivc"
	"github.com/katalvlaran/ivivc/correlation"
	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/validation"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (a *app) logWarnings(ws []diag.Warning) {
	for _, w := range ws {
		a.log.Warn(w.Detail, "code", string(w.Code), "subject", w.Subject)
	}
}

func newTab(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func renderLine(w io.Writer, r correlation.Result) {
	if r.Undefined {
		fmt.Fprintf(w, "Level %s: %s on %s undefined (n=%d): %s\n", r.Level, r.YLabel, r.XLabel, r.N, r.Detail)
		return
	}
	fmt.Fprintf(w, "Level %s: %s = %.4f · %s %+.4f  (r²=%.4f, SE=%.4f, n=%d)\n",
		r.Level, r.YLabel, r.Slope, r.XLabel, r.Intercept, r.R2, r.StdErr, r.N)
}

func renderLevelA(w io.Writer, rep ivivc.LevelAReport) error {
	fmt.Fprintf(w, "Scenario %s\n", rep.Scenario)
	renderLine(w, rep.Correlation)
	fmt.Fprintln(w)

	return renderValidation(w, rep.Validation)
}

func renderLevelB(w io.Writer, rep ivivc.LevelBReport) error {
	for _, r := range []correlation.Result{rep.Correlation, rep.Pathological} {
		renderLine(w, r)
		tw := newTab(w)
		fmt.Fprintln(tw, "FORMULATION\tMDT (h)\tVDT (h²)\tMRT (h)")
		for _, m := range r.Moments {
			fmt.Fprintf(tw, "%s\t%.2f\t%.2f\t%.2f\n", m.Subject, m.MDT, m.VDT, m.MRT)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintln(w)
	}

	return nil
}

func renderLevelC(w io.Writer, rep ivivc.LevelCReport) error {
	fmt.Fprintf(w, "Scenario %s: r² by in vitro (rows) × in vivo (cols)\n", rep.Scenario)
	tw := newTab(w)
	fmt.Fprint(tw, "METRIC")
	for _, c := range rep.Matrix.Cols {
		fmt.Fprintf(tw, "\t%s", c)
	}
	fmt.Fprintln(tw)
	for i, row := range rep.Matrix.Rows {
		fmt.Fprint(tw, row)
		for j := range rep.Matrix.Cols {
			c := rep.Matrix.At(i, j)
			if c.Undefined {
				fmt.Fprint(tw, "\t-")
				continue
			}
			fmt.Fprintf(tw, "\t%.3f", c.R2)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if rep.Best != nil {
		fmt.Fprintf(w, "Best: %s vs %s (r²=%.4f)\n", rep.Best.InVivo, rep.Best.InVitro, rep.Best.R2)
	}

	fmt.Fprintln(w)
	tw = newTab(w)
	fmt.Fprintln(tw, "REF\tTEST\tf1\tf2\tSIMILAR")
	for _, s := range rep.Similarity {
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f\t%v\n", s.Ref, s.Test, s.F1, s.F2, s.Similar())
	}

	return tw.Flush()
}

func renderValidation(w io.Writer, res validation.Result) error {
	tw := newTab(w)
	fmt.Fprintln(tw, "SUBJECT\tMETRIC\tPREDICTED\tOBSERVED\tPE (%)\tPASS")
	for _, o := range res.Outcomes {
		fmt.Fprintf(tw, "%s\t%s\t%.4g\t%.4g\t%+.2f\t%v\n",
			o.Subject, o.Metric, o.Predicted, o.Observed, o.PE, o.Pass)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "mean |PE| %.2f%% (≤ %.0f: %v), max |PE| %.2f%% (≤ %.0f: %v) → %s\n",
		res.MeanAbsPE, res.Thresholds.MeanAbsPE, res.PassesMean,
		res.MaxAbsPE, res.Thresholds.IndividualAbsPE, res.PassesIndividual, res.Verdict())

	return nil
}
