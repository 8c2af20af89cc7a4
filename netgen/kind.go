// SPDX-License-Identifier: MIT
// Package: netgen/netgen

package netgen

// ProblemKind is the class of a generated problem.
type ProblemKind int

const (
	// MinCostFlow is a general transshipment problem with costs and capacities.
	MinCostFlow ProblemKind = iota
	// MaxFlow has unit costs; only capacities matter.
	MaxFlow
	// Assignment is a perfect matching between equally many sources and sinks.
	Assignment
)

// String returns a human-readable name.
func (k ProblemKind) String() string {
	switch k {
	case Assignment:
		return "assignment"
	case MaxFlow:
		return "maximum flow"
	case MinCostFlow:
		return "minimum cost flow"
	default:
		return "unknown"
	}
}

// Token returns the DIMACS problem-line designator ("asn", "max", "min").
func (k ProblemKind) Token() string {
	switch k {
	case Assignment:
		return "asn"
	case MaxFlow:
		return "max"
	default:
		return "min"
	}
}

// KindFromToken is the inverse of Token.
func KindFromToken(tok string) (ProblemKind, bool) {
	switch tok {
	case "asn":
		return Assignment, true
	case "max":
		return MaxFlow, true
	case "min":
		return MinCostFlow, true
	default:
		return MinCostFlow, false
	}
}
