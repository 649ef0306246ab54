// SPDX-License-Identifier: MIT
// Package: ivivc/internal/telemetry
//
// telemetry.go — Recorder interface and its no-op implementation.

// Package telemetry records engine and request metrics through OpenTelemetry.
package telemetry

import (
	"context"
	"time"
)

// Recorder is the metrics sink used by the CLI and the HTTP server.
type Recorder interface {
	// RecordCorrelation counts one correlation fit and records its r².
	RecordCorrelation(ctx context.Context, level string, r2 float64, n int)
	// RecordValidation counts one validation verdict.
	RecordValidation(ctx context.Context, mode, verdict string)
	// RecordRequest records one HTTP request.
	RecordRequest(ctx context.Context, route string, status int, d time.Duration)
	Close(ctx context.Context) error
}

// NoOp discards everything.
type NoOp struct{}

// NewNoOp returns a Recorder that does nothing, used when export is off or
// the collector is unreachable.
func NewNoOp() *NoOp { return &NoOp{} }

func (*NoOp) RecordCorrelation(context.Context, string, float64, int) {}
func (*NoOp) RecordValidation(context.Context, string, string) {}
func (*NoOp) RecordRequest(context.Context, string, int, time.Duration) {}
func (*NoOp) Close(context.Context) error { return nil }

var (
	_ Recorder = (*NoOp)(nil)
	_ Recorder = (*Exporter)(nil)
)
