// SPDX-License-Identifier: MIT
// Package: netgen/netgen

package netgen

// distributeSupply spreads p.Supply over the sources. Each source keeps a
// random share of an even split and passes the rest to a random source; the
// indivisible remainder lands on one more random source.
func (g *generator) distributeSupply() {
	sources := g.p.Sources
	share := g.p.Supply / sources
	for i := int64(0); i < sources; i++ {
		partial := g.rng.UniformInt(1, share)
		g.supply[i] += partial
		g.supply[g.rng.UniformInt(0, sources-1)] += share - partial
	}
	g.supply[g.rng.UniformInt(0, sources-1)] += g.p.Supply % sources
}
