// SPDX-License-Identifier: MIT
// Package: ivivc/internal/telemetry
//
// exporter.go — OpenTelemetry metric instruments and the OTLP exporter.

package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/katalvlaran/ivivc/internal/config"
)

const (
	serviceName    = "ivivc"
	serviceVersion = "1.0.0"
)

// Exporter records metrics on an SDK meter provider.
type Exporter struct {
	provider     *sdkmetric.MeterProvider
	correlations metric.Int64Counter
	r2Hist       metric.Float64Histogram
	validations  metric.Int64Counter
	requests     metric.Int64Counter
	latencyHist  metric.Float64Histogram
}

// NewExporter pushes metrics to an OTLP/gRPC collector.
func NewExporter(ctx context.Context, cfg config.OTel) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	return newExporter(provider)
}

// NewWithReader builds an Exporter over an arbitrary reader, e.g. a
// sdkmetric.ManualReader in tests.
func NewWithReader(r sdkmetric.Reader) (*Exporter, error) {
	return newExporter(sdkmetric.NewMeterProvider(sdkmetric.WithReader(r)))
}

func newExporter(provider *sdkmetric.MeterProvider) (*Exporter, error) {
	meter := provider.Meter(serviceName)

	correlations, err := meter.Int64Counter(
		"ivivc_correlations_total",
		metric.WithDescription("Correlation fits computed"),
		metric.WithUnit("{fit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating correlations counter: %w", err)
	}

	r2Hist, err := meter.Float64Histogram(
		"ivivc_correlation_r2",
		metric.WithDescription("Coefficient of determination per fit"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating r2 histogram: %w", err)
	}

	validations, err := meter.Int64Counter(
		"ivivc_validations_total",
		metric.WithDescription("Validation verdicts"),
		metric.WithUnit("{verdict}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating validations counter: %w", err)
	}

	requests, err := meter.Int64Counter(
		"ivivc_http_requests_total",
		metric.WithDescription("HTTP requests served"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating requests counter: %w", err)
	}

	latencyHist, err := meter.Float64Histogram(
		"ivivc_http_request_duration_seconds",
		metric.WithDescription("HTTP request latency"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating latency histogram: %w", err)
	}

	return &Exporter{
		provider:     provider,
		correlations: correlations,
		r2Hist:       r2Hist,
		validations:  validations,
		requests:     requests,
		latencyHist:  latencyHist,
	}, nil
}

func (e *Exporter) RecordCorrelation(ctx context.Context, level string, r2 float64, n int) {
	opt := metric.WithAttributes(
		attribute.String("level", level),
		attribute.Int("n", n),
	)
	e.correlations.Add(ctx, 1, opt)
	e.r2Hist.Record(ctx, r2, opt)
}

func (e *Exporter) RecordValidation(ctx context.Context, mode, verdict string) {
	e.validations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("mode", mode),
		attribute.String("verdict", verdict),
	))
}

func (e *Exporter) RecordRequest(ctx context.Context, route string, status int, d time.Duration) {
	opt := metric.WithAttributes(
		attribute.String("route", route),
		attribute.Int("status", status),
	)
	e.requests.Add(ctx, 1, opt)
	e.latencyHist.Record(ctx, d.Seconds(), opt)
}

// Close shuts down the provider and flushes pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}
