package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSimulation indicates a trajectory query before any successful
	// Simulate call.
	ErrNoSimulation = errors.New("sim: no simulation has been run")

	// ErrTooFewSamples indicates a requested sample count below two.
	ErrTooFewSamples = errors.New("sim: at least two sample points required")

	// ErrUnknownBody indicates a query for a body the catalog does not hold.
	ErrUnknownBody = errors.New("sim: unknown body")

	// ErrUnknownSample indicates a sample index outside the stored range.
	ErrUnknownSample = errors.New("sim: sample index out of range")
)

// IntegrationError reports a failed Simulate call together with the
// requested parameters, for diagnosis. The run is not retried.
type IntegrationError struct {
	SpanDays float64
	Steps    int
	Rtol     float64
	Wrapped  error
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("sim: integration over %g days (%d samples, rtol=%g) failed: %v",
		e.SpanDays, e.Steps, e.Rtol, e.Wrapped)
}

func (e *IntegrationError) Unwrap() error {
	return e.Wrapped
}
