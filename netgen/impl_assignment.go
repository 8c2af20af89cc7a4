// SPDX-License-Identifier: MIT
// Package: netgen/netgen

package netgen

import (
	"fmt"

	"github.com/katalvlaran/netgen/indexlist"
)

// buildAssignment wires every source to one distinct sink (a random perfect
// matching), then tops each source up with extra arcs.
// Supply is +1 on the first half of the nodes and -1 on the rest.
func (g *generator) buildAssignment() error {
	half := len(g.supply) / 2
	for i := range g.supply {
		if i < half {
			g.supply[i] = 1
		} else {
			g.supply[i] = -1
		}
	}

	heads := g.part.Heads()
	unmatched := indexlist.New(heads.First, heads.Last)
	for src := 1; src <= half; src++ {
		head := unmatched.Choose(int(g.rng.UniformInt(1, int64(unmatched.Size()))))
		g.arcs = append(g.arcs, Arc{From: src, To: head, Cost: g.uniformCost(), Capacity: 1})

		pool := g.headPool()
		pool.Remove(head)
		if err := g.pickHead(pool, src); err != nil {
			return fmt.Errorf("%s: source %d: %w", methodAssignment, src, err)
		}
	}
	return nil
}
