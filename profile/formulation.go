// SPDX-License-Identifier: MIT
// Package: ivivc/profile
//
// formulation.go — immutable formulation bundle.

package profile

import (
	"encoding/json"
	"strings"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// Formulation is one drug product: an ID, the parameters that generated it,
// its dissolution series (fraction released) and its PK series. PK may be
// empty (Len() == 0) for in-vitro-only references.
type Formulation struct {
	id     string
	params Params
	diss   series.TimeSeries
	pk     series.TimeSeries
}

// NewFormulation validates id and copies params.
func NewFormulation(id string, params Params, dissolution, pk series.TimeSeries) (Formulation, error) {
	if strings.TrimSpace(id) == "" {
		return Formulation{}, diag.Errorf("profile.NewFormulation", diag.ErrDomain, "empty formulation id")
	}

	return Formulation{id: id, params: params.Clone(), diss: dissolution, pk: pk}, nil
}

// ID returns the formulation identifier.
func (f Formulation) ID() string { return f.id }

// Params returns a copy of the parameter map.
func (f Formulation) Params() Params { return f.params.Clone() }

// Param returns a single parameter.
func (f Formulation) Param(name string) (float64, bool) { return f.params.Get(name) }

// Dissolution returns the cumulative fraction-released series.
func (f Formulation) Dissolution() series.TimeSeries { return f.diss }

// PK returns the plasma concentration series.
func (f Formulation) PK() series.TimeSeries { return f.pk }

// HasPK reports whether a PK series is attached.
func (f Formulation) HasPK() bool { return f.pk.Len() > 0 }

// WithPK returns a copy with pk replaced.
func (f Formulation) WithPK(pk series.TimeSeries) Formulation {
	f.params = f.params.Clone()
	f.pk = pk

	return f
}

type formulationJSON struct {
	ID          string             `json:"id"`
	Params      Params             `json:"params,omitempty"`
	Dissolution *series.TimeSeries `json:"dissolution,omitempty"`
	PK          *series.TimeSeries `json:"pk,omitempty"`
}

// MarshalJSON renders the formulation for reports; empty series are omitted.
func (f Formulation) MarshalJSON() ([]byte, error) {
	out := formulationJSON{ID: f.id, Params: f.params}
	if f.diss.Len() > 0 {
		d := f.diss
		out.Dissolution = &d
	}
	if f.pk.Len() > 0 {
		p := f.pk
		out.PK = &p
	}

	return json.Marshal(out)
}

// IDs returns the IDs of fs in order.
func IDs(fs []Formulation) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.id
	}

	return out
}
