// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// params.go - the 13 generation parameters and their validation.
//
// Contract:
//   - Field order matches the legacy argument order; FromSlice/Slice map the
//     positional form used by DIMACS headers and batch input.
//   - Validate reports the FIRST violated rule as a *ParamError.
//   - Every field must lie in [0, MaxParam] so that all internal products
//     fit comfortably in int64.
//   - Nodes is further capped at MaxNodes because Generate allocates
//     per-node state before drawing a single arc.

package netgen

import (
	"fmt"
	"math"
)

// NumParams is the number of positional generation parameters.
const NumParams = 13

// MaxParam bounds every parameter (the legacy 32-bit signed range).
const MaxParam int64 = math.MaxInt32

// MaxNodes bounds the node count of a single problem.
const MaxNodes int64 = 1 << 24

// fieldNames lists parameter names in positional order.
var fieldNames = [NumParams]string{
	"nodes", "sources", "sinks", "density", "mincost", "maxcost", "supply",
	"tsources", "tsinks", "hicost", "capacitated", "mincap", "maxcap",
}

// FieldNames returns the parameter names in positional order.
func FieldNames() []string {
	out := make([]string, NumParams)
	copy(out, fieldNames[:])
	return out
}

// Params are the knobs of one NETGEN problem.
// HiCostPct and CapacitatedPct are percentages in [0, 100].
type Params struct {
	Nodes          int64 `yaml:"nodes" json:"nodes"`
	Sources        int64 `yaml:"sources" json:"sources"`
	Sinks          int64 `yaml:"sinks" json:"sinks"`
	Density        int64 `yaml:"density" json:"density"`
	MinCost        int64 `yaml:"mincost" json:"mincost"`
	MaxCost        int64 `yaml:"maxcost" json:"maxcost"`
	Supply         int64 `yaml:"supply" json:"supply"`
	TSources       int64 `yaml:"tsources" json:"tsources"`
	TSinks         int64 `yaml:"tsinks" json:"tsinks"`
	HiCostPct      int64 `yaml:"hicost" json:"hicost"`
	CapacitatedPct int64 `yaml:"capacitated" json:"capacitated"`
	MinCap         int64 `yaml:"mincap" json:"mincap"`
	MaxCap         int64 `yaml:"maxcap" json:"maxcap"`
}

// FromSlice builds Params from exactly NumParams values in legacy order.
func FromSlice(v []int64) (Params, error) {
	if len(v) != NumParams {
		return Params{}, fmt.Errorf("%s: %w", methodFromSlice,
			paramErrorf("params", int64(len(v)), "want exactly %d values", NumParams))
	}
	return Params{
		Nodes: v[0], Sources: v[1], Sinks: v[2], Density: v[3],
		MinCost: v[4], MaxCost: v[5], Supply: v[6],
		TSources: v[7], TSinks: v[8],
		HiCostPct: v[9], CapacitatedPct: v[10],
		MinCap: v[11], MaxCap: v[12],
	}, nil
}

// Slice returns the parameters in legacy positional order.
func (p Params) Slice() []int64 {
	return []int64{
		p.Nodes, p.Sources, p.Sinks, p.Density,
		p.MinCost, p.MaxCost, p.Supply,
		p.TSources, p.TSinks,
		p.HiCostPct, p.CapacitatedPct,
		p.MinCap, p.MaxCap,
	}
}

// Validate checks field ranges and the cross-field rules, in this order:
//
//	every field in [0, MaxParam]
//	nodes, sources, sinks, density > 0
//	nodes <= MaxNodes
//	sources + sinks <= nodes
//	mincost <= maxcost, mincap <= maxcap
//	supply >= sources
//	tsources <= sources, tsinks <= sinks
//	hicost, capacitated in [0, 100]
//
// Unlike the legacy tool, density may be smaller than nodes; construction
// then simply stops adding extra arcs once the skeleton is complete.
func (p Params) Validate() error {
	for i, v := range p.Slice() {
		if v < 0 || v > MaxParam {
			return fmt.Errorf("%s: %w", methodValidate,
				paramErrorf(fieldNames[i], v, "must be in [0, %d]", MaxParam))
		}
	}

	positive := []struct {
		name string
		v    int64
	}{
		{"nodes", p.Nodes}, {"sources", p.Sources}, {"sinks", p.Sinks}, {"density", p.Density},
	}
	for _, f := range positive {
		if f.v == 0 {
			return fmt.Errorf("%s: %w", methodValidate, paramErrorf(f.name, f.v, "must be positive"))
		}
	}

	switch {
	case p.Nodes > MaxNodes:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("nodes", p.Nodes, "must not exceed %d", MaxNodes))
	case p.Sources+p.Sinks > p.Nodes:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("nodes", p.Nodes, "must be at least sources+sinks=%d", p.Sources+p.Sinks))
	case p.MinCost > p.MaxCost:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("mincost", p.MinCost, "must not exceed maxcost=%d", p.MaxCost))
	case p.MinCap > p.MaxCap:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("mincap", p.MinCap, "must not exceed maxcap=%d", p.MaxCap))
	case p.Supply < p.Sources:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("supply", p.Supply, "must be at least sources=%d", p.Sources))
	case p.TSources > p.Sources:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("tsources", p.TSources, "must not exceed sources=%d", p.Sources))
	case p.TSinks > p.Sinks:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("tsinks", p.TSinks, "must not exceed sinks=%d", p.Sinks))
	case p.HiCostPct > 100:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("hicost", p.HiCostPct, "must be a percentage in [0, 100]"))
	case p.CapacitatedPct > 100:
		return fmt.Errorf("%s: %w", methodValidate,
			paramErrorf("capacitated", p.CapacitatedPct, "must be a percentage in [0, 100]"))
	}

	return nil
}

// Kind classifies the problem these parameters describe.
//
//	Assignment  - pure sources and pure sinks cover all nodes, pair up
//	              one-to-one, and supply equals the source count.
//	MaxFlow     - otherwise, when every cost is fixed at 1.
//	MinCostFlow - everything else.
func (p Params) Kind() ProblemKind {
	pureSources := p.Sources - p.TSources
	pureSinks := p.Sinks - p.TSinks
	if pureSources+pureSinks == p.Nodes && pureSources == pureSinks && p.Sources == p.Supply {
		return Assignment
	}
	if p.MinCost == 1 && p.MaxCost == 1 {
		return MaxFlow
	}
	return MinCostFlow
}

// sinksPerSource is how many sinks a source with chainLen interior nodes in
// its chain is wired to, clamped to [2, sinks].
func (p Params) sinksPerSource(chainLen int) int {
	interior := p.Nodes - p.Sources - p.Sinks
	var per int64
	if interior == 0 {
		per = p.Sinks/p.Sources + 1
	} else {
		per = int64(2.0 * float64(chainLen) * float64(p.Sinks) / float64(interior))
	}
	per = max(per, 2)
	per = min(per, p.Sinks)
	return int(per)
}
