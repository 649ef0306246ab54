// SPDX-License-Identifier: MIT
// Package: ivivc/profile
//
// build.go — declarative formulation construction.
//
// Seeds: each formulation gets one seed per channel (dissolution, PK) derived
// from (seed, ID, channel) with FNV-1a, so BuildAll results never depend on
// goroutine scheduling or on the order of specs.

package profile

import (
	"encoding/binary"
	"hash/fnv"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ivivc/diag"
	"github.com/katalvlaran/ivivc/series"
)

// Channel is one generated series of a formulation.
type Channel struct {
	Kind    Kind
	Params  Params
	Grid    series.Grid
	Options []Option
}

// Spec declares a formulation. PK.Kind == "" means dissolution only.
type Spec struct {
	ID          string
	Dissolution Channel
	PK          Channel
}

// DeriveSeed mixes seed with id and channel into an independent seed.
func DeriveSeed(seed int64, id, channel string) int64 {
	h := fnv.New64a()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(seed))
	_, _ = h.Write(buf[:])
	_, _ = h.Write([]byte(id))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(channel))

	return int64(h.Sum64())
}

// Build generates one formulation. Its parameter map is the union of both
// channels' parameters; PK wins on a name clash.
func Build(spec Spec, seed int64) (Formulation, error) {
	const op = "profile.Build"
	if !spec.Dissolution.Kind.IsDissolution() {
		return Formulation{}, diag.WithSubject(op, spec.ID,
			diag.Errorf(op, diag.ErrDomain, "dissolution kind %q is not a release model", spec.Dissolution.Kind))
	}

	diss, err := Generate(spec.Dissolution.Kind, spec.Dissolution.Params, spec.Dissolution.Grid,
		DeriveSeed(seed, spec.ID, "dissolution"), spec.Dissolution.Options...)
	if err != nil {
		return Formulation{}, diag.WithSubject(op, spec.ID, err)
	}

	params := spec.Dissolution.Params.Clone()
	if params == nil {
		params = Params{}
	}

	var pk series.TimeSeries
	if spec.PK.Kind != "" {
		if spec.PK.Kind.IsDissolution() {
			return Formulation{}, diag.WithSubject(op, spec.ID,
				diag.Errorf(op, diag.ErrDomain, "pk kind %q is a release model", spec.PK.Kind))
		}
		pk, err = Generate(spec.PK.Kind, spec.PK.Params, spec.PK.Grid,
			DeriveSeed(seed, spec.ID, "pk"), spec.PK.Options...)
		if err != nil {
			return Formulation{}, diag.WithSubject(op, spec.ID, err)
		}
		for k, v := range spec.PK.Params {
			params[k] = v
		}
	}

	return NewFormulation(spec.ID, params, diss, pk)
}

// BuildAll builds specs concurrently and returns the formulations sorted by
// ID. Duplicate IDs are an ErrDomain. The first failure is returned.
func BuildAll(specs []Spec, seed int64) ([]Formulation, error) {
	const op = "profile.BuildAll"
	seen := make(map[string]struct{}, len(specs))
	for _, s := range specs {
		if _, dup := seen[s.ID]; dup {
			return nil, diag.WithSubject(op, s.ID, diag.Errorf(op, diag.ErrDomain, "duplicate formulation id"))
		}
		seen[s.ID] = struct{}{}
	}

	out := make([]Formulation, len(specs))
	var g errgroup.Group
	for i := range specs {
		i := i
		g.Go(func() error {
			f, err := Build(specs[i], seed)
			if err != nil {
				return err
			}
			out[i] = f

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(out, func(a, b int) bool { return out[a].id < out[b].id })

	return out, nil
}
