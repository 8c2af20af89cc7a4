// SPDX-License-Identifier: MIT
// Package: netgen/netgen

package netgen

// Arc is a directed arc between 1-based node ids.
type Arc struct {
	From     int
	To       int
	Cost     int64
	Capacity int64
}

// Result is one generated problem. It is fully assembled before Generate
// returns and callers should treat it as read-only.
//
// Supply is indexed by node-1: positive values are sources, negative values
// are sink demands, and the entries always sum to zero.
type Result struct {
	Kind   ProblemKind
	Nodes  int
	Arcs   []Arc
	Supply []int64
}

// NumArcs returns len(r.Arcs).
func (r *Result) NumArcs() int { return len(r.Arcs) }

// SupplyOf returns the supply of a 1-based node, or 0 when out of range.
func (r *Result) SupplyOf(node int) int64 {
	if node < 1 || node > len(r.Supply) {
		return 0
	}
	return r.Supply[node-1]
}

// TotalSupply is the sum of all positive supplies.
func (r *Result) TotalSupply() int64 {
	var total int64
	for _, s := range r.Supply {
		if s > 0 {
			total += s
		}
	}
	return total
}

// Sources returns the nodes with positive supply, ascending.
func (r *Result) Sources() []int {
	var out []int
	for i, s := range r.Supply {
		if s > 0 {
			out = append(out, i+1)
		}
	}
	return out
}

// Sinks returns the nodes with negative supply, ascending.
func (r *Result) Sinks() []int {
	var out []int
	for i, s := range r.Supply {
		if s < 0 {
			out = append(out, i+1)
		}
	}
	return out
}

// Degrees returns per-node out- and in-degree, indexed by node id (index 0 is
// unused).
func (r *Result) Degrees() (out, in []int) {
	out = make([]int, r.Nodes+1)
	in = make([]int, r.Nodes+1)
	for _, a := range r.Arcs {
		if a.From >= 1 && a.From <= r.Nodes {
			out[a.From]++
		}
		if a.To >= 1 && a.To <= r.Nodes {
			in[a.To]++
		}
	}
	return out, in
}
