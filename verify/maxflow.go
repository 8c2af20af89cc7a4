// SPDX-License-Identifier: MIT
// Package: netgen/verify
//
// maxflow.go - Dinic's algorithm on an integer residual network.
//
// Network layout:
//   - vertex 0 is the super-source, 1..N the problem nodes, N+1 the super-sink;
//   - super-source -> v with capacity supply(v) for every supply(v) > 0;
//   - v -> super-sink with capacity -supply(v) for every supply(v) < 0;
//   - for netgen.MaxFlow both terminal capacities are unbounded;
//   - one residual pair per problem arc, in arc order.
//
// Steps per phase:
//  1. Check for cancellation.
//  2. BFS from the super-source to build levels; stop if the sink is unreachable.
//  3. Push blocking flow with DFS along strictly increasing levels, keeping a
//     per-vertex cursor so saturated edges are never rescanned in a phase.

package verify

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/netgen/netgen"
)

// residual is an edge-list residual network; edge e and e^1 are a pair.
type residual struct {
	head []int   // first edge per vertex, -1 if none
	next []int   // next edge of the same tail
	to   []int   // edge head
	cap  []int64 // remaining capacity
}

func newResidual(vertices, edges int) *residual {
	r := &residual{
		head: make([]int, vertices),
		next: make([]int, 0, 2*edges),
		to:   make([]int, 0, 2*edges),
		cap:  make([]int64, 0, 2*edges),
	}
	for i := range r.head {
		r.head[i] = -1
	}
	return r
}

func (r *residual) addEdge(u, v int, c int64) {
	r.to = append(r.to, v)
	r.cap = append(r.cap, c)
	r.next = append(r.next, r.head[u])
	r.head[u] = len(r.to) - 1

	r.to = append(r.to, u)
	r.cap = append(r.cap, 0)
	r.next = append(r.next, r.head[v])
	r.head[v] = len(r.to) - 1
}

// MaxFlow returns the largest amount of supply that can be routed to the
// demands of res through its arc capacities. Costs are ignored. For a
// netgen.MaxFlow problem the supplies only mark sources and sinks, and the
// result is the maximum source-to-sink flow of the network.
//
// Errors: ErrNilResult, the first Check violation, or ctx.Err().
func MaxFlow(ctx context.Context, res *netgen.Result) (int64, error) {
	if err := Check(res); err != nil {
		return 0, fmt.Errorf("%s: %w", methodMaxFlow, err)
	}

	source, sink := 0, res.Nodes+1
	unbounded := res.Kind == netgen.MaxFlow
	r := newResidual(res.Nodes+2, len(res.Arcs)+res.Nodes)
	for i, s := range res.Supply {
		switch {
		case s > 0 && unbounded:
			r.addEdge(source, i+1, math.MaxInt64)
		case s > 0:
			r.addEdge(source, i+1, s)
		case s < 0 && unbounded:
			r.addEdge(i+1, sink, math.MaxInt64)
		case s < 0:
			r.addEdge(i+1, sink, -s)
		}
	}
	for _, a := range res.Arcs {
		r.addEdge(a.From, a.To, a.Capacity)
	}

	var flow int64
	level := make([]int, len(r.head))
	iter := make([]int, len(r.head))
	queue := make([]int, 0, len(r.head))
	for {
		if err := ctx.Err(); err != nil {
			return flow, fmt.Errorf("%s: %w", methodMaxFlow, err)
		}

		for i := range level {
			level[i] = -1
		}
		level[source] = 0
		queue = append(queue[:0], source)
		for i := 0; i < len(queue); i++ {
			u := queue[i]
			for e := r.head[u]; e >= 0; e = r.next[e] {
				if v := r.to[e]; r.cap[e] > 0 && level[v] < 0 {
					level[v] = level[u] + 1
					queue = append(queue, v)
				}
			}
		}
		if level[sink] < 0 {
			break
		}

		copy(iter, r.head)
		for {
			pushed := r.push(level, iter, source, sink, math.MaxInt64)
			if pushed == 0 {
				break
			}
			flow += pushed
		}
	}
	return flow, nil
}

// push sends up to available units from u to sink along the level graph.
func (r *residual) push(level, iter []int, u, sink int, available int64) int64 {
	if u == sink {
		return available
	}
	for ; iter[u] >= 0; iter[u] = r.next[iter[u]] {
		e := iter[u]
		v := r.to[e]
		if r.cap[e] <= 0 || level[v] != level[u]+1 {
			continue
		}
		pushed := r.push(level, iter, v, sink, min(available, r.cap[e]))
		if pushed > 0 {
			r.cap[e] -= pushed
			r.cap[e^1] += pushed
			return pushed
		}
	}
	return 0
}

// Feasible reports whether every unit of supply in res can reach a demand.
// A netgen.MaxFlow problem is feasible when it has at least one source and
// every source reaches some sink through arcs of positive capacity.
func Feasible(ctx context.Context, res *netgen.Result) (bool, error) {
	if res != nil && res.Kind == netgen.MaxFlow {
		return terminalsConnected(ctx, res)
	}
	flow, err := MaxFlow(ctx, res)
	if err != nil {
		return false, err
	}
	return flow == res.TotalSupply(), nil
}

// terminalsConnected walks arcs backwards from every sink and reports
// whether all sources were reached.
func terminalsConnected(ctx context.Context, res *netgen.Result) (bool, error) {
	if err := Check(res); err != nil {
		return false, fmt.Errorf("%s: %w", methodFeasible, err)
	}
	if err := ctx.Err(); err != nil {
		return false, fmt.Errorf("%s: %w", methodFeasible, err)
	}

	in := make([][]int, res.Nodes+1)
	for _, a := range res.Arcs {
		if a.Capacity > 0 {
			in[a.To] = append(in[a.To], a.From)
		}
	}
	seen := make([]bool, res.Nodes+1)
	queue := make([]int, 0, res.Nodes)
	for i, s := range res.Supply {
		if s < 0 {
			seen[i+1] = true
			queue = append(queue, i+1)
		}
	}
	for i := 0; i < len(queue); i++ {
		for _, u := range in[queue[i]] {
			if !seen[u] {
				seen[u] = true
				queue = append(queue, u)
			}
		}
	}

	sources := 0
	for i, s := range res.Supply {
		if s <= 0 {
			continue
		}
		if !seen[i+1] {
			return false, nil
		}
		sources++
	}
	return sources > 0, nil
}

const (
	methodMaxFlow  = "MaxFlow"
	methodFeasible = "Feasible"
)
