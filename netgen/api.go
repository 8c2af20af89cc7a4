// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// api.go - public entry point.

package netgen

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netgen/indexlist"
	"github.com/katalvlaran/netgen/random"
)

// arcCapHint caps the initial arc-slice allocation; density alone may be
// as large as MaxParam.
const arcCapHint = 1 << 16

// generator carries the state of one run. It is never shared.
type generator struct {
	p    Params
	part Partition
	cfg  genConfig
	rng  *random.Engine

	arcs   []Arc
	supply []int64

	// nodesLeft counts the tails that still have to be topped up with
	// extra arcs; it steers how the remaining density is spread.
	nodesLeft int64
}

// Generate builds the problem described by p from seed.
//
// The seed must lie in [1, random.Modulus-1]. Parameters are validated
// before any random draw. For a fixed (seed, p) the Result is identical on
// every call and platform.
//
// Errors:
//   - ErrInvalidParameter (as *ParamError) for a bad seed or bad parameters.
//   - ErrGenerationFailed when the bounded extra-arc budget loop gives up.
func Generate(seed int64, p Params, opts ...Option) (*Result, error) {
	rng, err := random.New(seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, &ParamError{
			Field: "seed",
			Value: seed,
			Rule:  fmt.Sprintf("must be in [1, %d]", random.Modulus-1),
			Err:   err,
		})
	}
	if err = p.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	g := &generator{
		p:         p,
		part:      p.Partition(),
		cfg:       newGenConfig(opts...),
		rng:       rng,
		arcs:      make([]Arc, 0, int(min(p.Density, arcCapHint))),
		supply:    make([]int64, p.Nodes),
		nodesLeft: p.Nodes - p.Sinks + p.TSinks,
	}

	kind := p.Kind()
	log := g.cfg.logger
	log.Debug("netgen: generation started",
		slog.Int64("seed", seed), slog.String("kind", kind.String()),
		slog.Int64("nodes", p.Nodes), slog.Int64("density", p.Density))

	if kind == Assignment {
		err = g.buildAssignment()
	} else {
		err = g.buildNetwork()
	}
	if err != nil {
		log.Debug("netgen: generation failed", slog.Int64("seed", seed), slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	log.Debug("netgen: generation done",
		slog.Int64("seed", seed), slog.Int("arcs", len(g.arcs)))

	return &Result{
		Kind:   kind,
		Nodes:  int(p.Nodes),
		Arcs:   g.arcs,
		Supply: g.supply,
	}, nil
}

// headPool returns a fresh list of every node that may receive an arc.
func (g *generator) headPool() *indexlist.List {
	h := g.part.Heads()
	return indexlist.New(h.First, h.Last)
}
