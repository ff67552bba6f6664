package annotate

import (
	"errors"
	"fmt"
)

// Sentinel errors for load-time failures.
var (
	// ErrInputNotFound indicates a required source file is absent.
	ErrInputNotFound = errors.New("input file not found")

	// ErrUnknownItem indicates a judgment was addressed to an id that is not
	// part of the current session.
	ErrUnknownItem = errors.New("unknown item")
)

// ParseError indicates a source could not be parsed. The load that produced
// it halts; any prior session state is untouched.
type ParseError struct {
	Source string // Path or description of the offending input
	Err    error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidValueError indicates a judgment value outside the session's allowed
// set. The prior judgment for the item, if any, is unchanged.
type InvalidValueError struct {
	Value   any
	Allowed []Value
}

// Error implements the error interface.
func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("judgment value %v not in allowed set %v", e.Value, e.Allowed)
}
