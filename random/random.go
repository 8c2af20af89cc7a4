// SPDX-License-Identifier: MIT
// Package: netgen/random
//
// random.go - portable multiplicative congruential generator.
//
// Contract:
//   - x' = 16807 * x mod (2^31 - 1), evaluated with a 16-bit hi/lo split so
//     that no intermediate product exceeds 47 bits.
//   - Every call advances the state exactly once; there is no peek or rewind.
//   - Engines are independent values; the package holds no global state.
//
// Determinism:
//   - For a fixed seed, any fixed sequence of calls yields the same values on
//     every platform (pure int64 arithmetic, no floating point).

package random

import (
	"errors"
	"fmt"
)

const (
	// Multiplier is 7^5, the classic "minimal standard" multiplier.
	Multiplier int64 = 16807

	// Modulus is the Mersenne prime 2^31 - 1.
	Modulus int64 = 2147483647

	lowMask  = 0xffff
	highMask = 0x7fff
)

// ErrBadSeed indicates a seed outside [1, Modulus).
var ErrBadSeed = errors.New("random: seed must be in [1, 2147483646]")

// Engine is a seeded generator owned by exactly one generation run.
// The zero value is not usable; construct with New.
type Engine struct {
	state int64
}

// New returns an Engine positioned at seed.
// Seeds of zero or below, and seeds at or above Modulus, are rejected because
// they collapse the sequence.
func New(seed int64) (*Engine, error) {
	if seed <= 0 || seed >= Modulus {
		return nil, fmt.Errorf("random: New(%d): %w", seed, ErrBadSeed)
	}

	return &Engine{state: seed}, nil
}

// NextRaw advances the recurrence and returns the new state in [1, Modulus).
// Complexity: O(1).
func (e *Engine) NextRaw() int64 {
	hi := Multiplier * (e.state >> 16)
	lo := Multiplier * (e.state & lowMask)
	hi += lo >> 16
	lo &= lowMask
	lo += hi >> 15
	hi &= highMask
	lo -= Modulus
	e.state = (hi << 16) + lo
	if e.state < 0 {
		e.state += Modulus
	}

	return e.state
}

// UniformInt advances the engine and returns a value in [low, high].
//
// The state is ALWAYS advanced, even for a degenerate range; when
// high <= low the result is high. Otherwise the result is
// low + state mod (high-low+1), which is the scaling rule of the NETGEN
// generator (slight modulo bias included).
// Complexity: O(1).
func (e *Engine) UniformInt(low, high int64) int64 {
	raw := e.NextRaw()
	if high <= low {
		return high
	}

	return low + raw%(high-low+1)
}

// State returns the current internal state without advancing it.
// It is intended for diagnostics and tests.
func (e *Engine) State() int64 {
	return e.state
}
