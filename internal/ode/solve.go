package ode

import (
	"context"
	"math"
)

type Options struct {
	// Rtol is the relative error tolerance per step. Zero means 1e-8.
	Rtol float64
	// InitialStep seeds the adaptive controller. Zero means span/1000.
	InitialStep float64
	// MinStep aborts the solve when the controller shrinks below it.
	// Zero means span * 1e-14.
	MinStep float64
	// MaxStep caps step growth. Zero means the full span.
	MaxStep float64
	// MaxSteps bounds accepted plus rejected steps. Zero means 10 million.
	MaxSteps int
}

func DefaultOptions() Options {
	return Options{Rtol: 1e-8}
}

func (o Options) withDefaults(span float64) Options {
	if o.Rtol <= 0 {
		o.Rtol = 1e-8
	}
	if o.InitialStep <= 0 {
		o.InitialStep = span / 1000
	}
	if o.MinStep <= 0 {
		o.MinStep = span * 1e-14
	}
	if o.MaxStep <= 0 {
		o.MaxStep = span
	}
	if o.MaxSteps <= 0 {
		o.MaxSteps = 10_000_000
	}
	return o
}

// Solve integrates sys from y0 over [0, span] and records every accepted
// step. With an AdaptiveStepper the step size is controlled to meet
// opts.Rtol; otherwise fixed steps of opts.InitialStep are taken. The
// context is checked between steps so long solves can be abandoned.
func Solve(ctx context.Context, sys System, st Stepper, y0 State, span float64, opts Options) (*Solution, error) {
	if span <= 0 {
		return nil, &SolveError{Span: span, Rtol: opts.Rtol, Wrapped: ErrBadSpan}
	}
	opts = opts.withDefaults(span)

	fail := func(t float64, err error) (*Solution, error) {
		return nil, &SolveError{Span: span, Rtol: opts.Rtol, At: t, Wrapped: err}
	}

	sol := &Solution{}
	t := 0.0
	y := y0.Clone()
	sol.append(t, y, sys.Derive(t, y))

	adaptive, _ := st.(AdaptiveStepper)
	dt := opts.InitialStep
	steps := 0

	for t < span {
		select {
		case <-ctx.Done():
			return fail(t, ctx.Err())
		default:
		}

		if steps++; steps > opts.MaxSteps {
			return fail(t, ErrTooManySteps)
		}

		if dt > span-t {
			dt = span - t
		}

		var next State
		if adaptive != nil {
			candidate, accepted, dtNext := adaptive.TryStep(sys, y, t, dt, opts.Rtol)
			if !accepted {
				if dtNext < opts.MinStep {
					return fail(t, ErrStepTooSmall)
				}
				dt = dtNext
				continue
			}
			next = candidate
			t += dt
			dt = math.Min(dtNext, opts.MaxStep)
		} else {
			next = st.Step(sys, y, t, dt)
			t += dt
		}

		if !next.IsValid() {
			return fail(t, ErrUnstable)
		}

		y = next
		sol.append(t, y, sys.Derive(t, y))
	}

	return sol, nil
}
