// SPDX-License-Identifier: MIT
// Package: ivivc/correlation
//
// level_c.go — single-point correlation matrix.
//
// Rows are in-vitro metrics, columns in-vivo metrics, cells row-major.
// Metric values are computed once per formulation; the regressions run
// concurrently and are written back by cell index, so the layout never
// depends on scheduling.

package correlation

import (
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
)

// Cell is one (in-vitro, in-vivo) regression. A metric with no spread
// across formulations leaves the cell Undefined.
type Cell struct {
	InVitro string `json:"in_vitro"`
	InVivo  string `json:"in_vivo"`
	Result
}

// Matrix is the Level C result.
type Matrix struct {
	Rows     []string       `json:"rows"`
	Cols     []string       `json:"cols"`
	Subjects []string       `json:"subjects"`
	Cells    []Cell         `json:"cells"`
	Warnings []diag.Warning `json:"warnings,omitempty"`
}

// At returns the cell for row i, column j.
func (m Matrix) At(i, j int) Cell { return m.Cells[i*len(m.Cols)+j] }

// Best returns the defined cell with the highest r² (first on ties) and
// false if none is defined.
func (m Matrix) Best() (Cell, bool) {
	best, ok := Cell{}, false
	for _, c := range m.Cells {
		if c.Undefined {
			continue
		}
		if !ok || c.R2 > best.R2 {
			best, ok = c, true
		}
	}

	return best, ok
}

// LevelC regresses every (inVitro[i], inVivo[j]) metric pair across fs.
// Nil metric lists fall back to the defaults.
//
// Complexity: O(|inVitro|·|inVivo|·|fs|) plus the cost of each metric
// evaluation, which runs once per formulation.
func LevelC(fs []profile.Formulation, inVitro, inVivo []Metric, opts Options) (Matrix, error) {
	const op = "correlation.LevelC"
	if len(fs) < 2 {
		return Matrix{}, diag.Errorf(op, diag.ErrInsufficientData, "need ≥ 2 formulations, got %d", len(fs))
	}
	if inVitro == nil {
		inVitro = DefaultInVitroMetrics()
	}
	if inVivo == nil {
		inVivo = DefaultInVivoMetrics()
	}
	if len(inVitro) == 0 || len(inVivo) == 0 {
		return Matrix{}, diag.Errorf(op, diag.ErrInsufficientData, "empty metric list")
	}

	xv, err := evalMetrics(fs, inVitro)
	if err != nil {
		return Matrix{}, err
	}
	yv, err := evalMetrics(fs, inVivo)
	if err != nil {
		return Matrix{}, err
	}

	m := Matrix{
		Rows:     MetricNames(inVitro),
		Cols:     MetricNames(inVivo),
		Subjects: profile.IDs(fs),
		Cells:    make([]Cell, len(inVitro)*len(inVivo)),
	}
	var warn []diag.Warning
	if need := opts.minFormulations(); len(fs) < need {
		warn = []diag.Warning{insufficient(LevelCName, len(fs), need)}
		m.Warnings = warn
	}

	var g errgroup.Group
	for i := range inVitro {
		for j := range inVivo {
			i, j := i, j
			g.Go(func() error {
				c, err := fitCell(m.Rows[i], m.Cols[j], m.Subjects, xv[i], yv[j])
				if err != nil {
					return err
				}
				if !c.Undefined && warn != nil {
					c.Warnings = append([]diag.Warning(nil), warn...)
				}
				m.Cells[i*len(inVivo)+j] = c

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Matrix{}, err
	}

	return m, nil
}

// evalMetrics returns values[metric][formulation].
func evalMetrics(fs []profile.Formulation, ms []Metric) ([][]float64, error) {
	out := make([][]float64, len(ms))
	for i, m := range ms {
		out[i] = make([]float64, len(fs))
		for k, f := range fs {
			v, err := m.Eval(f)
			if err != nil {
				return nil, diag.WithSubject("correlation.LevelC", f.ID()+"/"+m.Name, err)
			}
			out[i][k] = v
		}
	}

	return out, nil
}

func fitCell(row, col string, subjects []string, x, y []float64) (Cell, error) {
	c := Cell{InVitro: row, InVivo: col}
	c.Level, c.XLabel, c.YLabel = LevelCName, row, col

	line, err := Fit(x, y)
	if errors.Is(err, diag.ErrDomain) {
		c.Undefined, c.Detail = true, err.Error()

		return c, nil
	}
	if err != nil {
		return Cell{}, err
	}
	c.Line = line
	c.Points = make([]Point, len(x))
	for k := range x {
		c.Points[k] = Point{Subject: subjects[k], X: x[k], Y: y[k], Residual: y[k] - line.Predict(x[k])}
	}

	return c, nil
}
