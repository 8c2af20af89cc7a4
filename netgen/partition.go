// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// partition.go - role ranges derived from Params.

package netgen

// Role of a node in the generated network.
type Role int

const (
	RoleNone Role = iota
	RolePureSource
	RoleTransSource
	RoleInterior
	RoleTransSink
	RolePureSink
)

func (r Role) String() string {
	switch r {
	case RolePureSource:
		return "pure source"
	case RoleTransSource:
		return "transshipment source"
	case RoleInterior:
		return "interior"
	case RoleTransSink:
		return "transshipment sink"
	case RolePureSink:
		return "pure sink"
	default:
		return "none"
	}
}

// Range is an inclusive node interval; it is empty when Last < First.
type Range struct {
	First, Last int
}

// Len returns the number of nodes in r.
func (r Range) Len() int {
	if r.Last < r.First {
		return 0
	}
	return r.Last - r.First + 1
}

// Contains reports whether node lies in r.
func (r Range) Contains(node int) bool {
	return node >= r.First && node <= r.Last
}

// Partition splits 1..Nodes into the five role ranges, in ascending order.
type Partition struct {
	PureSources  Range
	TransSources Range
	Interior     Range
	TransSinks   Range
	PureSinks    Range
}

// Partition computes the role ranges. Params should be valid.
func (p Params) Partition() Partition {
	n, s, t := int(p.Nodes), int(p.Sources), int(p.Sinks)
	ts, tt := int(p.TSources), int(p.TSinks)
	return Partition{
		PureSources:  Range{1, s - ts},
		TransSources: Range{s - ts + 1, s},
		Interior:     Range{s + 1, n - t},
		TransSinks:   Range{n - t + 1, n - t + tt},
		PureSinks:    Range{n - t + tt + 1, n},
	}
}

// Role returns the role of node, or RoleNone when it is out of range.
func (pt Partition) Role(node int) Role {
	switch {
	case pt.PureSources.Contains(node):
		return RolePureSource
	case pt.TransSources.Contains(node):
		return RoleTransSource
	case pt.Interior.Contains(node):
		return RoleInterior
	case pt.TransSinks.Contains(node):
		return RoleTransSink
	case pt.PureSinks.Contains(node):
		return RolePureSink
	default:
		return RoleNone
	}
}

// Heads is the range every arc head falls into: all nodes except the pure
// sources.
func (pt Partition) Heads() Range {
	return Range{pt.TransSources.First, pt.PureSinks.Last}
}

// Tails is the range every arc tail falls into: sources, interior nodes and
// transshipment sinks.
func (pt Partition) Tails() Range {
	return Range{pt.PureSources.First, pt.TransSinks.Last}
}
