package ode

import (
	"errors"
	"fmt"
)

// Solver failure modes.
var (
	// ErrBadSpan indicates a non-positive integration span.
	ErrBadSpan = errors.New("ode: time span must be positive")

	// ErrStepTooSmall indicates the adaptive step fell below the minimum
	// without satisfying the tolerance.
	ErrStepTooSmall = errors.New("ode: step size underflow")

	// ErrTooManySteps indicates the step budget was exhausted before the
	// end of the span.
	ErrTooManySteps = errors.New("ode: step budget exhausted")

	// ErrUnstable indicates the state picked up NaN or Inf components.
	ErrUnstable = errors.New("ode: state diverged")
)

// SolveError carries the requested parameters alongside the failure so
// callers can report what was asked for, not just what went wrong.
type SolveError struct {
	Span    float64
	Rtol    float64
	At      float64 // integration time reached before the failure
	Wrapped error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("solve over [0, %g] at rtol=%g stopped at t=%g: %v",
		e.Span, e.Rtol, e.At, e.Wrapped)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
