// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// attributes.go - cost and capacity draws.
//
// Draw order is fixed per arc kind and must not be reordered:
//   - skeleton arcs: capacity coin, then cost coin (and the cost itself);
//   - extra arcs:    capacity coin (and value), then cost, and the cost is
//     drawn only when the arc is actually kept.

package netgen

const percent = 100

// skeletonArc draws the attributes of a skeleton arc owned by source src.
// A capacitated skeleton arc still carries at least the source's supply so
// the skeleton alone can route it.
func (g *generator) skeletonArc(src, tail, head int) Arc {
	capacity := g.p.Supply
	if g.rng.UniformInt(1, percent) <= g.p.CapacitatedPct {
		capacity = max(g.supply[src-1], g.p.MinCap)
	}
	cost := g.p.MaxCost
	if g.rng.UniformInt(1, percent) > g.p.HiCostPct {
		cost = g.uniformCost()
	}
	return Arc{From: tail, To: head, Cost: cost, Capacity: capacity}
}

// extraCapacity draws the capacity of an extra arc; uncapacitated arcs are
// bounded by the total supply.
func (g *generator) extraCapacity() int64 {
	if g.rng.UniformInt(1, percent) <= g.p.CapacitatedPct {
		return g.rng.UniformInt(g.p.MinCap, g.p.MaxCap)
	}
	return g.p.Supply
}

func (g *generator) uniformCost() int64 {
	return g.rng.UniformInt(g.p.MinCost, g.p.MaxCost)
}
