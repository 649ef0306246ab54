package telemetry_test

import (
	"context"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/katalvlaran/ivivc/internal/config"
	"github.com/katalvlaran/ivivc/internal/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, r *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, r.Collect(context.Background(), &rm))
	out := map[string]metricdata.Metrics{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}

	return out
}

func TestExporter_Records(t *testing.T) {
	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	e, err := telemetry.NewWithReader(reader)
	require.NoError(t, err)
	defer func() { _ = e.Close(ctx) }()

	e.RecordCorrelation(ctx, "A", 0.97, 39)
	e.RecordCorrelation(ctx, "A", 0.95, 39)
	e.RecordValidation(ctx, "internal", "pass")
	e.RecordRequest(ctx, "/healthz", 200, 3*time.Millisecond)

	ms := collect(t, reader)
	require.Contains(t, ms, "ivivc_correlations_total")
	sum, ok := ms["ivivc_correlations_total"].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, sum.DataPoints, 1)
	assert.Equal(t, int64(2), sum.DataPoints[0].Value)

	hist, ok := ms["ivivc_correlation_r2"].Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	require.Len(t, hist.DataPoints, 1)
	assert.Equal(t, uint64(2), hist.DataPoints[0].Count)

	assert.Contains(t, ms, "ivivc_validations_total")
	assert.Contains(t, ms, "ivivc_http_requests_total")
	assert.Contains(t, ms, "ivivc_http_request_duration_seconds")
}

func TestNewExporter_Disabled(t *testing.T) {
	_, err := telemetry.NewExporter(context.Background(), config.OTel{Enabled: false})
	assert.Error(t, err)
}

func TestNoOp(t *testing.T) {
	var r telemetry.Recorder = telemetry.NewNoOp()
	r.RecordCorrelation(context.Background(), "B", 1, 2)
	assert.NoError(t, r.Close(context.Background()))
}
