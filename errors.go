package kinetics

import (
	"errors"
	"fmt"
)

// Error categories. Every error returned by Estimate wraps exactly one of them.
var (
	// ErrInvalidInput indicates malformed samples: negative concentrations,
	// too few points, mismatched lengths or non-increasing times.
	ErrInvalidInput = errors.New("kinetics: invalid input")

	// ErrDegenerateData indicates well-formed samples that cannot separate
	// the reaction order from the rate constant.
	ErrDegenerateData = errors.New("kinetics: degenerate data")

	// ErrNumericFailure indicates a NaN or Inf in the computed result.
	ErrNumericFailure = errors.New("kinetics: numeric failure")
)

// EstimateError carries the category and the offending condition.
type EstimateError struct {
	Kind   error  // One of the Err* categories
	Index  int    // Offending sample index, -1 when not tied to a sample
	Reason string // Human-readable condition
}

func (e *EstimateError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: %s (sample %d)", e.Kind, e.Reason, e.Index)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Reason)
}

func (e *EstimateError) Unwrap() error {
	return e.Kind
}

func invalidInput(index int, format string, args ...any) error {
	return &EstimateError{Kind: ErrInvalidInput, Index: index, Reason: fmt.Sprintf(format, args...)}
}

func degenerate(reason string) error {
	return &EstimateError{Kind: ErrDegenerateData, Index: -1, Reason: reason}
}

func numericFailure(reason string) error {
	return &EstimateError{Kind: ErrNumericFailure, Index: -1, Reason: reason}
}
