package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest installs an in-memory tracer provider.
func setupTracingTest(t *testing.T) *tracetest.InMemoryExporter {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer(scopeName)

	t.Cleanup(func() {
		otel.SetTracerProvider(original)
		tracer = otel.Tracer(scopeName)
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("shutting down tracer provider: %v", err)
		}
	})
	return exporter
}

// setupMetricsTest installs a meter provider with a manual reader.
func setupMetricsTest(t *testing.T) *sdkmetric.ManualReader {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	original := otel.GetMeterProvider()
	otel.SetMeterProvider(provider)

	t.Cleanup(func() {
		otel.SetMeterProvider(original)
		if err := provider.Shutdown(context.Background()); err != nil {
			t.Logf("shutting down meter provider: %v", err)
		}
	})
	return reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) *metricdata.ResourceMetrics {
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return &rm
}

func findMetric(rm *metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func TestSpanManager_BatchAndProblem(t *testing.T) {
	exporter := setupTracingTest(t)
	sm := NewSpanManager()

	ctx, batch := sm.StartBatchSpan(context.Background(), "run-1", 2)
	_, ok := sm.StartProblemSpan(ctx, 13502460, 1)
	sm.EndSpanWithError(ok, nil)
	pctx, bad := sm.StartProblemSpan(ctx, 0, 2)
	sm.AddSpanEvent(pctx, "validated", attribute.Bool("valid", false))
	sm.EndSpanWithError(bad, errors.New("bad seed"))
	sm.EndSpanWithError(batch, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 3)

	assert.Equal(t, SpanProblem, spans[0].Name)
	assert.Equal(t, codes.Ok, spans[0].Status.Code)
	assert.Contains(t, spans[0].Attributes, attribute.Int64("problem.seed", 13502460))

	assert.Equal(t, codes.Error, spans[1].Status.Code)
	assert.Equal(t, "bad seed", spans[1].Status.Description)
	require.Len(t, spans[1].Events, 2) // custom event + recorded error
	assert.Equal(t, "validated", spans[1].Events[0].Name)

	assert.Equal(t, SpanBatch, spans[2].Name)
	assert.Contains(t, spans[2].Attributes, attribute.String("run.id", "run-1"))
	assert.Equal(t, spans[2].SpanContext.SpanID(), spans[0].Parent.SpanID())
}

func TestSpanManager_EndNilSpan(t *testing.T) {
	assert.NotPanics(t, func() { NewSpanManager().EndSpanWithError(nil, errors.New("x")) })
}

func TestMetrics_RecordProblem(t *testing.T) {
	reader := setupMetricsTest(t)
	m, err := newOtelMetrics()
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordProblem(ctx, "min", 2000, 3*time.Millisecond, nil)
	m.RecordProblem(ctx, "asn", 500, time.Millisecond, nil)
	m.RecordProblem(ctx, "", 0, time.Millisecond, errors.New("invalid"))

	rm := collectMetrics(t, reader)

	problems := findMetric(rm, MetricProblems)
	require.NotNil(t, problems)
	sum, ok := problems.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(3), total)

	errs := findMetric(rm, MetricProblemErrors)
	require.NotNil(t, errs)
	errSum, ok := errs.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	require.Len(t, errSum.DataPoints, 1)
	assert.Equal(t, int64(1), errSum.DataPoints[0].Value)

	arcs := findMetric(rm, MetricProblemArcs)
	require.NotNil(t, arcs)
	hist, ok := arcs.Data.(metricdata.Histogram[int64])
	require.True(t, ok)
	var count uint64
	var arcSum int64
	for _, dp := range hist.DataPoints {
		count += dp.Count
		arcSum += dp.Sum
	}
	assert.Equal(t, uint64(2), count)
	assert.Equal(t, int64(2500), arcSum)

	assert.NotNil(t, findMetric(rm, MetricProblemLatency))
}

func TestNewMetricsRecorder_NotNoop(t *testing.T) {
	setupMetricsTest(t)
	_, isNoop := NewMetricsRecorder().(NoopMetrics)
	assert.False(t, isNoop)
}

func TestNoop(t *testing.T) {
	t.Parallel()

	var sm SpanManager = NoopSpanManager{}
	ctx := context.Background()
	got, span := sm.StartBatchSpan(ctx, "x", 1)
	assert.Equal(t, ctx, got)
	assert.False(t, span.IsRecording())
	_, span = sm.StartProblemSpan(ctx, 1, 1)
	assert.NotPanics(t, func() {
		sm.AddSpanEvent(ctx, "e")
		sm.EndSpanWithError(span, errors.New("x"))
		NoopMetrics{}.RecordProblem(ctx, "min", 1, time.Second, nil)
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "debug", FormatJSON)
	require.NoError(t, err)
	LogProblemStart(EnrichLogger(logger, "run-9"), 5, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "problem starting", rec["msg"])
	assert.Equal(t, "run-9", rec["run_id"])
	assert.Equal(t, float64(5), rec["seed"])

	buf.Reset()
	logger, err = NewLogger(&buf, "WARN", FormatText)
	require.NoError(t, err)
	LogProblemDone(logger, 1, "min", 10, 1.5)
	assert.Empty(t, buf.String())
	LogProblemError(logger, 3, 2, errors.New("boom"))
	assert.Contains(t, buf.String(), "error=boom")

	_, err = NewLogger(&buf, "loud", FormatText)
	assert.Error(t, err)
	_, err = NewLogger(&buf, "info", "xml")
	assert.Error(t, err)
}

func TestLogHelpers_NilLogger(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		var l *slog.Logger
		assert.Nil(t, EnrichLogger(l, "x"))
		LogBatchStart(l, "x", 1)
		LogBatchDone(l, "x", 1, 0, 1)
		LogProblemStart(l, 1, 1)
		LogProblemDone(l, 1, "min", 1, 1)
		LogProblemError(l, 1, 1, errors.New("x"))
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	lvl, err := ParseLevel("Debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	_, err = ParseLevel("verbose")
	assert.Error(t, err)

	done := TimedOperation()
	assert.GreaterOrEqual(t, done(), 0.0)
}
