// SPDX-License-Identifier: MIT
// Package: ivivc/internal/report
//
// report.go — versioned run documents with optional snappy framing.

// Package report serialises analysis results as JSON documents tagged with a
// run ID, optionally snappy-framed.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang/snappy"
	"github.com/google/uuid"
)

// Version of the document layout.
const Version = 1

// Report is one exported analysis.
type Report struct {
	Version   int             `json:"version"`
	RunID     uuid.UUID       `json:"run_id"`
	Kind      string          `json:"kind"`
	Seed      int64           `json:"seed"`
	CreatedAt time.Time       `json:"created_at"`
	Warnings  []string        `json:"warnings,omitempty"`
	Payload   json.RawMessage `json:"payload"`
}

// ErrVersion reports a document written by an incompatible layout.
var ErrVersion = errors.New("report: unsupported version")

// New marshals payload into a fresh report.
func New(kind string, seed int64, payload any, warnings ...string) (Report, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Report{}, fmt.Errorf("report: marshal %s payload: %w", kind, err)
	}

	return Report{
		Version:   Version,
		RunID:     uuid.New(),
		Kind:      kind,
		Seed:      seed,
		CreatedAt: time.Now().UTC(),
		Warnings:  warnings,
		Payload:   b,
	}, nil
}

// Encode writes r as indented JSON, through a snappy framed stream when
// compress is set.
func Encode(w io.Writer, r Report, compress bool) error {
	if !compress {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	sw := snappy.NewBufferedWriter(w)
	if err := json.NewEncoder(sw).Encode(r); err != nil {
		_ = sw.Close()
		return fmt.Errorf("report: encode: %w", err)
	}

	return sw.Close()
}

// Decode reads a report written by Encode with the same compress flag.
func Decode(rd io.Reader, compressed bool) (Report, error) {
	if compressed {
		rd = snappy.NewReader(rd)
	}
	var r Report
	if err := json.NewDecoder(rd).Decode(&r); err != nil {
		return Report{}, fmt.Errorf("report: decode: %w", err)
	}
	if r.Version != Version {
		return Report{}, fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}

	return r, nil
}

// Unmarshal decodes the payload into v.
func (r Report) Unmarshal(v any) error {
	return json.Unmarshal(r.Payload, v)
}
