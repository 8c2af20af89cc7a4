// SPDX-License-Identifier: MIT
// Package: netgen/netgen
//
// errors.go - sentinel errors and the structured parameter error.
//
// Error policy:
//   - Callers branch with errors.Is / errors.As, never on message text.
//   - Context is attached with %w at each layer (method tag first).
//   - Generation never panics at runtime; option constructors may.

package netgen

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a structural or range violation in the
// generation inputs. The concrete error is a *ParamError naming the field.
var ErrInvalidParameter = errors.New("netgen: invalid parameter")

// ErrGenerationFailed indicates that generation could not complete within
// its bounded attempt policy (for example an extra-arc budget that no draw
// can satisfy). No partial Result is produced.
var ErrGenerationFailed = errors.New("netgen: generation failed")

// Method tags used as error prefixes.
const (
	methodGenerate   = "Generate"
	methodValidate   = "Validate"
	methodFromSlice  = "FromSlice"
	methodPickHead   = "pickHead"
	methodAssignment = "buildAssignment"
	methodNetwork    = "buildNetwork"
)

// ParamError reports which parameter broke which rule.
// It matches ErrInvalidParameter under errors.Is, and also matches Err when
// a lower layer supplied a cause (for example random.ErrBadSeed).
type ParamError struct {
	Field string
	Value int64
	Rule  string
	Err   error
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("netgen: invalid parameter %s=%d: %s", e.Field, e.Value, e.Rule)
}

// Unwrap exposes both the package sentinel and the optional cause.
func (e *ParamError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidParameter}
	}
	return []error{ErrInvalidParameter, e.Err}
}

func paramErrorf(field string, value int64, format string, args ...interface{}) *ParamError {
	return &ParamError{Field: field, Value: value, Rule: fmt.Sprintf(format, args...)}
}
