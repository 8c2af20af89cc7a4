// SPDX-License-Identifier: MIT
// Package: netgen/verify
//
// check.go - structural invariants of a generated problem.

package verify

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netgen/netgen"
)

var (
	// ErrNilResult indicates a nil *netgen.Result.
	ErrNilResult = errors.New("verify: nil result")

	// ErrNodeRange indicates an arc endpoint outside [1, Nodes] or a supply
	// vector of the wrong length.
	ErrNodeRange = errors.New("verify: node out of range")

	// ErrSelfArc indicates an arc whose tail equals its head.
	ErrSelfArc = errors.New("verify: self arc")

	// ErrDuplicateArc indicates two arcs with the same (tail, head).
	ErrDuplicateArc = errors.New("verify: duplicate arc")

	// ErrUnbalanced indicates supplies that do not sum to zero. Maximum flow
	// problems are exempt: their supplies only mark terminals.
	ErrUnbalanced = errors.New("verify: supplies do not balance")

	// ErrNegativeCapacity indicates an arc with capacity below zero.
	ErrNegativeCapacity = errors.New("verify: negative capacity")
)

// ArcError reports the offending arc by its position in Result.Arcs.
type ArcError struct {
	Index    int
	From, To int
	Err      error
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("%v: arc #%d %d->%d", e.Err, e.Index, e.From, e.To)
}

func (e *ArcError) Unwrap() error { return e.Err }

// Check validates the structural invariants of res and returns the first
// violation found, or nil. The balance rule is skipped for netgen.MaxFlow.
// Complexity: O(V + E) time and memory.
func Check(res *netgen.Result) error {
	if res == nil {
		return ErrNilResult
	}
	if len(res.Supply) != res.Nodes {
		return fmt.Errorf("%w: %d supplies for %d nodes", ErrNodeRange, len(res.Supply), res.Nodes)
	}

	seen := make(map[[2]int]struct{}, len(res.Arcs))
	for i, a := range res.Arcs {
		switch {
		case a.From < 1 || a.From > res.Nodes || a.To < 1 || a.To > res.Nodes:
			return &ArcError{Index: i, From: a.From, To: a.To, Err: ErrNodeRange}
		case a.From == a.To:
			return &ArcError{Index: i, From: a.From, To: a.To, Err: ErrSelfArc}
		case a.Capacity < 0:
			return &ArcError{Index: i, From: a.From, To: a.To, Err: ErrNegativeCapacity}
		}
		key := [2]int{a.From, a.To}
		if _, dup := seen[key]; dup {
			return &ArcError{Index: i, From: a.From, To: a.To, Err: ErrDuplicateArc}
		}
		seen[key] = struct{}{}
	}

	if res.Kind == netgen.MaxFlow {
		return nil
	}
	var sum int64
	for _, s := range res.Supply {
		sum += s
	}
	if sum != 0 {
		return fmt.Errorf("%w: sum is %d", ErrUnbalanced, sum)
	}
	return nil
}
