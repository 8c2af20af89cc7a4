// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// impl_skeleton.go - feasibility skeleton of transshipment problems.
//
// Construction, per run:
//  1. Split the total supply over the sources.
//  2. Thread every interior node into the chain of some source. The first
//     ~60% are dealt round-robin, the rest go to random sources.
//  3. For each source, in order:
//     a. collect its chain as (tail, head) pairs;
//     b. pick the sinks it serves and split its supply among them;
//     c. link each sink to a node on the chain;
//     d. sort the pairs by tail and emit them grouped per tail, topping each
//     tail up with extra arcs.
//  4. Give every transshipment sink its own extra arcs.
//
// Every skeleton arc of a source can carry that source's whole supply, so
// the skeleton alone routes all supply to the sinks.

package netgen

import (
	"fmt"

	"github.com/katalvlaran/netgen/indexlist"
)

// buildNetwork constructs min-cost-flow and max-flow problems.
func (g *generator) buildNetwork() error {
	n, sources, sinks := int(g.p.Nodes), int(g.p.Sources), int(g.p.Sinks)

	g.distributeSupply()

	// pred[v] is the predecessor of v on its source's circular chain;
	// a source with an empty chain points at itself.
	pred := make([]int, n+1)
	for i := 1; i <= sources; i++ {
		pred[i] = i
	}
	g.threadInterior(pred)

	// 1-based pair buffers plus one sentinel slot; a chain holds at most
	// every interior node and a source serves at most every sink.
	heads := make([]int, n+sinks+2)
	tails := make([]int, n+sinks+2)

	for src := 1; src <= sources; src++ {
		chainLen := collectChain(pred, src, heads, tails)
		served := g.chooseSinks(src, chainLen)
		count := g.linkSinks(pred, src, chainLen, served, heads, tails)

		sortByTail(heads, tails, count)
		tails[count+1] = 0

		if err := g.emitSkeleton(src, heads, tails, count); err != nil {
			return fmt.Errorf("%s: source %d: %w", methodNetwork, src, err)
		}
	}

	// transshipment sinks only ever received arcs so far
	trans := g.part.TransSinks
	for node := trans.First; node <= trans.Last; node++ {
		pool := g.headPool()
		pool.Remove(node)
		if err := g.pickHead(pool, node); err != nil {
			return fmt.Errorf("%s: transshipment sink %d: %w", methodNetwork, node, err)
		}
	}

	return nil
}

// threadInterior inserts every interior node right after some source in
// that source's chain.
func (g *generator) threadInterior(pred []int) {
	interior := g.part.Interior
	pool := indexlist.New(interior.First, interior.Last)
	remaining := int64(interior.Len())
	roundRobin := (4*remaining + 9) / 10

	source := 1
	for ; remaining > roundRobin; remaining-- {
		node := pool.Choose(int(g.rng.UniformInt(1, int64(pool.Size()))))
		pred[node] = pred[source]
		pred[source] = node
		source++
		if source > int(g.p.Sources) {
			source = 1
		}
	}
	for ; remaining > 0; remaining-- {
		node := pool.Choose(int(g.rng.UniformInt(1, int64(pool.Size()))))
		source = int(g.rng.UniformInt(1, g.p.Sources))
		pred[node] = pred[source]
		pred[source] = node
	}
}

// collectChain walks the chain of src and stores each link as (tail, head)
// in slots 1..len. It returns the chain length.
func collectChain(pred []int, src int, heads, tails []int) int {
	count := 0
	for node := pred[src]; node != src; node = pred[node] {
		count++
		heads[count] = node
		tails[count] = pred[node]
	}
	return count
}

// chooseSinks picks the sinks served by src. The last source also takes
// every sink that no earlier source reached, so no sink is left without
// a feeding arc.
func (g *generator) chooseSinks(src, chainLen int) []int {
	want := g.p.sinksPerSource(chainLen)
	sinkRange := g.part.TransSinks
	sinkRange.Last = g.part.PureSinks.Last
	pool := indexlist.New(sinkRange.First, sinkRange.Last)

	served := make([]int, 0, want)
	for i := 0; i < want; i++ {
		served = append(served, pool.Choose(int(g.rng.UniformInt(1, int64(pool.Size())))))
	}
	if src == int(g.p.Sources) {
		for pool.Size() > 0 {
			if sink := pool.Choose(1); g.supply[sink-1] == 0 {
				served = append(served, sink)
			}
		}
	}
	return served
}

// linkSinks splits the supply of src among served and appends one
// (chain node, sink) pair per sink after the chain pairs. It returns the
// total pair count.
func (g *generator) linkSinks(pred []int, src, chainLen int, served []int, heads, tails []int) int {
	count := chainLen
	fanout := int64(len(served))
	share := g.supply[src-1] / fanout

	k := pred[src]
	for _, sink := range served {
		count++
		partial := g.rng.UniformInt(1, share)
		j := g.rng.UniformInt(0, fanout-1)

		tails[count] = k
		heads[count] = sink
		g.supply[sink-1] -= partial
		g.supply[served[j]-1] -= share - partial

		// next link starts a random number of steps down the chain
		k = src
		for steps := g.rng.UniformInt(1, int64(chainLen)); steps > 0; steps-- {
			k = pred[k]
		}
	}
	g.supply[served[0]-1] -= g.supply[src-1] % fanout

	return count
}

// sortByTail orders slots 1..n by tail with a gap-halving shell sort.
// The sort is not stable; the exact exchange sequence fixes the emission
// order of arcs that share a tail.
func sortByTail(heads, tails []int, n int) {
	for gap := n / 2; gap > 0; gap /= 2 {
		for j := 1; j <= n-gap; j++ {
			for i := j; i >= 1 && tails[i] > tails[i+gap]; i -= gap {
				tails[i], tails[i+gap] = tails[i+gap], tails[i]
				heads[i], heads[i+gap] = heads[i+gap], heads[i]
			}
		}
	}
}

// emitSkeleton appends the sorted pairs of src as arcs, one tail group at a
// time, and tops every tail up with extra arcs. tails[count+1] must be a
// sentinel that matches no node.
func (g *generator) emitSkeleton(src int, heads, tails []int, count int) error {
	for i := 1; i <= count; {
		tail := tails[i]
		pool := g.headPool()
		pool.Remove(tail)
		for ; tails[i] == tail; i++ {
			pool.Remove(heads[i])
			g.arcs = append(g.arcs, g.skeletonArc(src, tail, heads[i]))
		}
		if err := g.pickHead(pool, tail); err != nil {
			return err
		}
	}
	return nil
}
