// SPDX-License-Identifier: MIT
// Package: netgen/batch
//
// scanner.go - whitespace-separated record stream.
//
// Stop rules, in the order they are checked:
//   - end of input before a seed            -> clean stop;
//   - seed missing, not an integer or <= 0  -> clean stop;
//   - problem not an integer or <= 0        -> clean stop;
//   - input ends inside the 13 parameters   -> clean stop, record dropped;
//   - a parameter that is not an integer    -> Err() returns ErrBadField.

package batch

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Scanner reads Records from a token stream. Layout across lines is free.
type Scanner struct {
	words *bufio.Scanner
	rec   Record
	err   error
	done  bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	words := bufio.NewScanner(r)
	words.Split(bufio.ScanWords)
	return &Scanner{words: words}
}

// Scan advances to the next record and reports whether one is available.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	seed, ok := s.positive()
	if !ok {
		return s.stop(nil)
	}
	problem, ok := s.positive()
	if !ok {
		return s.stop(nil)
	}

	v := make([]int64, RecordFields)
	v[0], v[1] = seed, problem
	for i := 2; i < RecordFields; i++ {
		if !s.words.Scan() {
			return s.stop(s.words.Err())
		}
		n, err := strconv.ParseInt(s.words.Text(), 10, 64)
		if err != nil {
			return s.stop(fmt.Errorf("%w: problem %d value %d (%q)", ErrBadField, problem, i+1, s.words.Text()))
		}
		v[i] = n
	}

	rec, err := fromValues(v)
	if err != nil {
		return s.stop(err)
	}
	s.rec = rec
	return true
}

// positive reads the next token as a positive integer.
func (s *Scanner) positive() (int64, bool) {
	if !s.words.Scan() {
		return 0, false
	}
	n, err := strconv.ParseInt(s.words.Text(), 10, 64)
	return n, err == nil && n > 0
}

func (s *Scanner) stop(err error) bool {
	s.done = true
	if err == nil {
		err = s.words.Err()
	}
	s.err = err
	return false
}

// Record returns the record read by the last successful Scan.
func (s *Scanner) Record() Record { return s.rec }

// Err returns the first non-EOF error that stopped the scan.
func (s *Scanner) Err() error { return s.err }

// ReadAll collects every record of r.
func ReadAll(r io.Reader) ([]Record, error) {
	sc := NewScanner(r)
	var out []Record
	for sc.Scan() {
		out = append(out, sc.Record())
	}
	return out, sc.Err()
}
