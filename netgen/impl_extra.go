// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// impl_extra.go - density top-up ("pick head").
//
// After a tail's skeleton arcs are emitted, pickHead decides how many extra
// arcs the tail gets so that the remaining density is spread over the tails
// still to come, then draws that many distinct heads from the tail's pool.
//
// Budget:
//   - nothing when 2*nodesLeft >= remaining density;
//   - the whole non-source range when even that cannot exhaust the rest;
//   - otherwise a random l in [1, 2*(remaining/(nodesLeft+1)-1)], redrawn
//     until the later tails can still absorb remaining-l arcs.
//
// The redraw loop is bounded by genConfig.maxAttempts, and inputs for which
// no draw can ever succeed are rejected up front with ErrGenerationFailed.

package netgen

import (
	"fmt"

	"github.com/katalvlaran/netgen/indexlist"
)

// pickHead tops tail up with extra arcs drawn from pool. Draws may land on
// positions past the true pool size (PseudoSize drift); such draws consume
// a capacity draw but add no arc.
func (g *generator) pickHead(pool *indexlist.List, tail int) error {
	nonSources := g.p.Nodes - g.p.Sources + g.p.TSources
	remaining := g.p.Density - int64(len(g.arcs))

	g.nodesLeft--
	if g.nodesLeft < 0 || 2*g.nodesLeft >= remaining {
		return nil
	}

	limit, err := g.extraBudget(int64(pool.PseudoSize()), nonSources, remaining)
	if err != nil {
		return fmt.Errorf("%s: tail %d: %w", methodPickHead, tail, err)
	}

	for ; limit > 0; limit-- {
		head := pool.Choose(int(g.rng.UniformInt(1, int64(pool.PseudoSize()))))
		capacity := g.extraCapacity()
		if head >= 1 && head <= int(g.p.Nodes) {
			g.arcs = append(g.arcs, Arc{From: tail, To: head, Cost: g.uniformCost(), Capacity: capacity})
		}
	}
	return nil
}

// extraBudget returns the number of extra-arc draws for the current tail.
func (g *generator) extraBudget(pseudo, nonSources, remaining int64) (int64, error) {
	left := g.nodesLeft
	if (remaining+nonSources-pseudo-1)/(left+1) >= nonSources-1 {
		return nonSources, nil
	}

	upper := 2 * (remaining/(left+1) - 1)
	absorb := float64(left) * float64(nonSources-1)

	// UniformInt(1, upper) never exceeds upper, so if even upper leaves too
	// much for the later tails the loop below can never terminate.
	if left > 0 && absorb < float64(remaining-upper) {
		return 0, fmt.Errorf("%w: %d arcs cannot be spread over %d tails", ErrGenerationFailed, remaining, left+1)
	}

	for attempt := 0; attempt < g.cfg.maxAttempts; attempt++ {
		l := g.rng.UniformInt(1, upper)
		if left == 0 {
			l = remaining
		}
		if absorb >= float64(remaining-l) {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: extra-arc budget not found after %d attempts", ErrGenerationFailed, g.cfg.maxAttempts)
}
