// SPDX-License-Identifier: MIT
// Package: netgen/observability

// Package observability carries the ambient instrumentation of netgen
// batches: structured logging, metrics and tracing.
//
// Logging goes through log/slog; metrics and tracing go through
// OpenTelemetry and pick up whatever global providers the process
// installed. Every feature has a no-op implementation, and every helper
// accepts a nil logger.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// Log formats accepted by NewLogger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(s)))); err != nil {
		return slog.LevelInfo, fmt.Errorf("observability: unknown log level %q", s)
	}
	return lvl, nil
}

// NewLogger builds a text or JSON slog logger writing to w.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case FormatText, "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case FormatJSON:
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("observability: unknown log format %q", format)
	}
}

// EnrichLogger adds the batch run id to a logger.
func EnrichLogger(logger *slog.Logger, runID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("run_id", runID))
}

// LogBatchStart logs the start of a batch.
func LogBatchStart(logger *slog.Logger, runID string, workers int) {
	if logger == nil {
		return
	}
	logger.Info("batch starting",
		slog.String("run_id", runID),
		slog.Int("workers", workers),
	)
}

// LogBatchDone logs batch completion.
func LogBatchDone(logger *slog.Logger, runID string, problems, failures int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("batch completed",
		slog.String("run_id", runID),
		slog.Int("problems", problems),
		slog.Int("failures", failures),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogProblemStart logs the start of one problem.
func LogProblemStart(logger *slog.Logger, seed, problem int64) {
	if logger == nil {
		return
	}
	logger.Debug("problem starting",
		slog.Int64("seed", seed),
		slog.Int64("problem", problem),
	)
}

// LogProblemDone logs a generated problem.
func LogProblemDone(logger *slog.Logger, problem int64, kind string, arcs int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("problem generated",
		slog.Int64("problem", problem),
		slog.String("kind", kind),
		slog.Int("arcs", arcs),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogProblemError logs a problem that was skipped.
func LogProblemError(logger *slog.Logger, seed, problem int64, err error) {
	if logger == nil {
		return
	}
	logger.Error("problem failed",
		slog.Int64("seed", seed),
		slog.Int64("problem", problem),
		slog.String("error", err.Error()),
	)
}

// TimedOperation returns a function reporting the elapsed milliseconds.
//
//	done := TimedOperation()
//	// ... work ...
//	ms := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
