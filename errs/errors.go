// Package errs defines the sentinel errors shared by the rssifit packages.
//
// Callers match them with errors.Is; functions wrap them with context using
// fmt.Errorf("%w: ...", errs.ErrX, ...).
package errs

import "errors"

var (
	// ErrEmptyInput is returned when an operation receives zero elements but needs at least one.
	ErrEmptyInput = errors.New("empty input")
	// ErrInsufficientData is returned when there are fewer elements than the operation
	// needs for a meaningful result, e.g. a standard deviation over a single sample.
	ErrInsufficientData = errors.New("insufficient data")
	// ErrDegenerateInput is returned when inputs are well-formed but the result is undefined,
	// e.g. a regression over points that all share the same x value.
	ErrDegenerateInput = errors.New("degenerate input")
	// ErrInvalidInput is returned when a structural precondition is violated, e.g.
	// mismatched group and distance counts or a non-positive distance.
	ErrInvalidInput = errors.New("invalid input")
)
