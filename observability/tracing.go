// SPDX-License-Identifier: MIT
// Package: netgen/observability

package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Instrumentation scope shared by tracer and meter.
const scopeName = "github.com/katalvlaran/netgen"

// Span names.
const (
	SpanBatch   = "netgen.batch"
	SpanProblem = "netgen.problem"
)

var tracer = otel.Tracer(scopeName)

// SpanManager handles span lifecycle for batches.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartBatchSpan starts the span covering a whole batch run.
	StartBatchSpan(ctx context.Context, runID string, records int) (context.Context, trace.Span)

	// StartProblemSpan starts a child span for one problem.
	StartProblemSpan(ctx context.Context, seed, problem int64) (context.Context, trace.Span)

	// EndSpanWithError completes a span, recording err when non-nil.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the span in ctx.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

type otelSpanManager struct{}

// NewSpanManager returns a SpanManager backed by the global tracer provider.
// Install the provider (otel.SetTracerProvider) before use.
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

func (m *otelSpanManager) StartBatchSpan(ctx context.Context, runID string, records int) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanBatch,
		trace.WithAttributes(
			attribute.String("run.id", runID),
			attribute.Int("batch.records", records),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) StartProblemSpan(ctx context.Context, seed, problem int64) (context.Context, trace.Span) {
	return tracer.Start(ctx, SpanProblem,
		trace.WithAttributes(
			attribute.Int64("problem.seed", seed),
			attribute.Int64("problem.number", problem),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
