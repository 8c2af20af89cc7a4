// Package netgen reproduces the classic NETGEN network-flow problem generator
// (Klingman, Napier and Stutz, 1974, with the later BCJL overflow fixes).
//
// Given 13 integer parameters and a seed, Generate builds an assignment,
// maximum-flow or minimum-cost-flow instance whose arcs, costs, capacities
// and supplies are identical, draw for draw, to the legacy C tool. The
// dimacs package renders a Result in the legacy text format.
//
// # Pipeline
//
//   - Params.Validate rejects inconsistent inputs before the first random draw.
//   - Params.Kind classifies the problem; Params.Partition exposes node roles.
//   - Network construction threads interior nodes into per-source chains,
//     attaches sinks, sorts the skeleton by tail and emits it, topping every
//     tail up with random extra arcs until the requested density is reached.
//   - Assignment problems use a dedicated perfect-matching skeleton.
//
// # Node roles
//
// Nodes are numbered 1..Nodes and roles follow from index ranges:
//
//	[1, S-TS]            pure sources
//	[S-TS+1, S]          transshipment sources (may also receive arcs)
//	[S+1, N-T]           interior transshipment nodes (zero supply)
//	[N-T+1, N-T+TT]      transshipment sinks (may also emit arcs)
//	[N-T+TT+1, N]        pure sinks
//
// # Determinism
//
// Every call owns a fresh random.Engine; nothing is shared between calls, so
// independent problems may be generated concurrently. The order of arcs in
// Result.Arcs is the creation order and is part of the output contract.
//
// # Errors
//
//	ErrInvalidParameter - a field or rule violation, reported as *ParamError.
//	ErrGenerationFailed - the extra-arc budget could not be satisfied within
//	                      the bounded attempt limit.
package netgen
