// SPDX-License-Identifier: MIT
// Package: netgen/batch
//
// record.go - one problem request and its positional parsing.

package batch

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/netgen/netgen"
)

// RecordFields is the number of integers in one positional record:
// seed, problem number, then the generation parameters.
const RecordFields = 2 + netgen.NumParams

var (
	// ErrIncompleteRecord indicates fewer than RecordFields values.
	ErrIncompleteRecord = errors.New("batch: incomplete record")

	// ErrBadField indicates a value that is not an integer.
	ErrBadField = errors.New("batch: bad field")
)

// Record is one problem request.
type Record struct {
	Seed    int64         `yaml:"seed"`
	Problem int64         `yaml:"problem"`
	Params  netgen.Params `yaml:",inline"`
}

// Valid reports whether the record continues a stream: seed and problem
// number must both be positive. A record failing Valid ends the stream.
func (r Record) Valid() bool {
	return r.Seed > 0 && r.Problem > 0
}

// ParseArgs parses exactly RecordFields integer arguments.
func ParseArgs(args []string) (Record, error) {
	if len(args) != RecordFields {
		return Record{}, fmt.Errorf("%w: want %d values, got %d", ErrIncompleteRecord, RecordFields, len(args))
	}
	v := make([]int64, len(args))
	for i, s := range args {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Record{}, fmt.Errorf("%w: value %d (%q): %v", ErrBadField, i+1, s, err)
		}
		v[i] = n
	}
	return fromValues(v)
}

func fromValues(v []int64) (Record, error) {
	p, err := netgen.FromSlice(v[2:])
	if err != nil {
		return Record{}, err
	}
	return Record{Seed: v[0], Problem: v[1], Params: p}, nil
}
