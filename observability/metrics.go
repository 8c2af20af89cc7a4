// SPDX-License-Identifier: MIT
// Package: netgen/observability

package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricProblems       = "netgen.problems"
	MetricProblemErrors  = "netgen.problem.errors"
	MetricProblemArcs    = "netgen.problem.arcs"
	MetricProblemLatency = "netgen.problem.latency_ms"
)

// MetricsRecorder records per-problem metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordProblem records one generation attempt. kind is empty on error.
	RecordProblem(ctx context.Context, kind string, arcs int, duration time.Duration, err error)
}

type otelMetrics struct {
	problems metric.Int64Counter
	errors   metric.Int64Counter
	arcs     metric.Int64Histogram
	latency  metric.Float64Histogram
}

// newOtelMetrics creates the instruments on the current global meter
// provider.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter(scopeName)

	problems, err := meter.Int64Counter(MetricProblems,
		metric.WithDescription("Number of generated problems"),
	)
	if err != nil {
		return nil, err
	}

	errs, err := meter.Int64Counter(MetricProblemErrors,
		metric.WithDescription("Number of problems that failed validation or generation"),
	)
	if err != nil {
		return nil, err
	}

	arcs, err := meter.Int64Histogram(MetricProblemArcs,
		metric.WithDescription("Arcs per generated problem"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram(MetricProblemLatency,
		metric.WithDescription("Generation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{problems: problems, errors: errs, arcs: arcs, latency: latency}, nil
}

// NewMetricsRecorder returns a MetricsRecorder on the global meter provider,
// or a no-op recorder if the instruments cannot be created.
// Install the provider (otel.SetMeterProvider) before calling it.
func NewMetricsRecorder() MetricsRecorder {
	m, err := newOtelMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

func (m *otelMetrics) RecordProblem(ctx context.Context, kind string, arcs int, duration time.Duration, err error) {
	ms := float64(duration.Microseconds()) / 1000
	if err != nil {
		attrs := metric.WithAttributes(attribute.Bool("success", false))
		m.problems.Add(ctx, 1, attrs)
		m.errors.Add(ctx, 1)
		m.latency.Record(ctx, ms, attrs)
		return
	}

	attrs := metric.WithAttributes(
		attribute.Bool("success", true),
		attribute.String("kind", kind),
	)
	m.problems.Add(ctx, 1, attrs)
	m.arcs.Record(ctx, int64(arcs), attrs)
	m.latency.Record(ctx, ms, attrs)
}
