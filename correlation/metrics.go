// SPDX-License-Identifier: MIT
// Package: ivivc/correlation
//
// metrics.go — scalar in-vitro and in-vivo metrics for Level C.

package correlation

import (
	"fmt"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/profile"
	"github.com/katalvlaran/ivivc/series"
)

// Metric reduces a formulation to one number.
type Metric struct {
	Name string
	Eval func(f profile.Formulation) (float64, error)
}

// ReleaseAt is % released at the dissolution sample nearest to t hours,
// whatever unit the dissolution series is recorded in.
func ReleaseAt(name string, t float64) Metric {
	return Metric{Name: name, Eval: func(f profile.Formulation) (float64, error) {
		v, err := f.Dissolution().InUnit(series.Hours).Nearest(t)
		if err != nil {
			return 0, err
		}

		return 100 * v, nil
	}}
}

// MDTMetric is the mean dissolution time.
func MDTMetric() Metric {
	return Metric{Name: "MDT", Eval: func(f profile.Formulation) (float64, error) {
		return series.MDT(f.Dissolution())
	}}
}

// DEMetric is the dissolution efficiency in percent.
func DEMetric() Metric {
	return Metric{Name: "DE", Eval: func(f profile.Formulation) (float64, error) {
		return series.DissolutionEfficiency(f.Dissolution())
	}}
}

// AUCMetric is the observed-window PK AUC.
func AUCMetric() Metric {
	return Metric{Name: "AUC", Eval: func(f profile.Formulation) (float64, error) {
		if err := needPK(f); err != nil {
			return 0, err
		}

		return series.AUC(f.PK())
	}}
}

// MRTMetric is the observed-window mean residence time.
func MRTMetric() Metric {
	return Metric{Name: "MRT", Eval: func(f profile.Formulation) (float64, error) {
		if err := needPK(f); err != nil {
			return 0, err
		}

		return series.MRTLast(f.PK())
	}}
}

// TmaxMetric is the time of the first PK maximum.
func TmaxMetric() Metric {
	return Metric{Name: "Tmax", Eval: func(f profile.Formulation) (float64, error) {
		if err := needPK(f); err != nil {
			return 0, err
		}
		_, tmax, err := series.Cmax(f.PK())

		return tmax, err
	}}
}

// CmaxMetric is the PK maximum.
func CmaxMetric() Metric {
	return Metric{Name: "Cmax", Eval: func(f profile.Formulation) (float64, error) {
		if err := needPK(f); err != nil {
			return 0, err
		}
		cmax, _, err := series.Cmax(f.PK())

		return cmax, err
	}}
}

// DefaultInVitroMetrics: %Rel at 1h, 6h, 24h, 72h, 7d, 14d, MDT and DE.
func DefaultInVitroMetrics() []Metric {
	out := make([]Metric, 0, 8)
	for _, r := range []struct {
		label string
		hours float64
	}{{"1h", 1}, {"6h", 6}, {"24h", 24}, {"72h", 72}, {"7d", 168}, {"14d", 336}} {
		out = append(out, ReleaseAt(fmt.Sprintf("%%Rel %s", r.label), r.hours))
	}

	return append(out, MDTMetric(), DEMetric())
}

// DefaultInVivoMetrics: AUC, MRT and Tmax.
func DefaultInVivoMetrics() []Metric {
	return []Metric{AUCMetric(), MRTMetric(), TmaxMetric()}
}

// MetricNames returns the names of ms in order.
func MetricNames(ms []Metric) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Name
	}

	return out
}

func needPK(f profile.Formulation) error {
	if f.HasPK() {
		return nil
	}

	return diag.Errorf("correlation.Metric", diag.ErrInsufficientData, "formulation has no PK series")
}
