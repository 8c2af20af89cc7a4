// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// options.go - functional options and the internal run configuration.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Generate itself never panics; defaults are deterministic.
//   - Options never influence the random stream, only limits and logging.

package netgen

import (
	"io"
	"log/slog"
)

// DefaultMaxAttempts bounds the rejection loop that sizes the extra-arc
// budget of one tail. Every legacy-valid input succeeds on the first few
// draws; the bound only turns pathological inputs into an error.
const DefaultMaxAttempts = 1 << 20

// Option customizes a Generate call.
type Option func(*genConfig)

type genConfig struct {
	maxAttempts int
	logger      *slog.Logger
}

func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxAttempts sets the attempt bound of the extra-arc budget loop.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("netgen: WithMaxAttempts(n<1)")
	}
	return func(c *genConfig) {
		c.maxAttempts = n
	}
}

// WithLogger routes debug-level progress records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("netgen: WithLogger(nil)")
	}
	return func(c *genConfig) {
		c.logger = l
	}
}
