// SPDX-License-Identifier: MIT
// Package: netgen/batch
//
// options.go - functional options for Run.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Defaults: one worker, no logging, no-op tracing and metrics.

package batch

import (
	"log/slog"

	"github.com/katalvlaran/netgen/netgen"
	"github.com/katalvlaran/netgen/observability"
)

// Option customizes a Run call.
type Option func(*runConfig)

type runConfig struct {
	workers    int
	logger     *slog.Logger
	spans      observability.SpanManager
	metrics    observability.MetricsRecorder
	genOptions []netgen.Option
}

func newRunConfig(opts ...Option) runConfig {
	cfg := runConfig{
		workers: 1,
		spans:   observability.NoopSpanManager{},
		metrics: observability.NoopMetrics{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithWorkers sets how many problems are generated concurrently.
// Output order is unaffected. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}
	return func(c *runConfig) {
		c.workers = n
	}
}

// WithLogger enables structured logging of the run. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}
	return func(c *runConfig) {
		c.logger = l
	}
}

// WithSpanManager enables tracing. Panics on nil.
func WithSpanManager(sm observability.SpanManager) Option {
	if sm == nil {
		panic("batch: WithSpanManager(nil)")
	}
	return func(c *runConfig) {
		c.spans = sm
	}
}

// WithMetrics enables metrics. Panics on nil.
func WithMetrics(m observability.MetricsRecorder) Option {
	if m == nil {
		panic("batch: WithMetrics(nil)")
	}
	return func(c *runConfig) {
		c.metrics = m
	}
}

// WithGenerateOptions forwards options to every netgen.Generate call.
func WithGenerateOptions(opts ...netgen.Option) Option {
	return func(c *runConfig) {
		c.genOptions = append(c.genOptions, opts...)
	}
}
