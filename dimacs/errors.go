// SPDX-License-Identifier: MIT
// Package: netgen/dimacs

package dimacs

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax indicates a malformed line; the error text carries the line number.
	ErrSyntax = errors.New("dimacs: syntax error")

	// ErrNoProblemLine indicates node or arc lines without a preceding "p" line,
	// or input that holds no problem at all.
	ErrNoProblemLine = errors.New("dimacs: missing problem line")

	// ErrArcCount indicates that a block's arc lines disagree with its "p" line.
	ErrArcCount = errors.New("dimacs: arc count mismatch")

	// ErrNilResult indicates a nil *netgen.Result passed to a writer.
	ErrNilResult = errors.New("dimacs: nil result")
)

const (
	methodWrite        = "Write"
	methodWriteHeader  = "WriteHeader"
	methodWriteNetwork = "WriteNetwork"
	methodRead         = "Read"
)

func syntaxErrorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("%s: line %d: %w: %s", methodRead, line, ErrSyntax, fmt.Sprintf(format, args...))
}
