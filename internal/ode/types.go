package ode

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) Norm() float64 {
	sum := 0.0
	for _, v := range s {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// System is an autonomous ODE system dY/dt = f(t, Y).
type System interface {
	Derive(t float64, y State) State
	Dim() int
}

// Energied is implemented by systems that expose a conserved total
// mechanical energy, used for drift diagnostics.
type Energied interface {
	Energy(y State) float64
}

// Stepper advances a state by a fixed step dt.
type Stepper interface {
	Step(sys System, y State, t, dt float64) State
}

// AdaptiveStepper additionally produces an embedded error estimate.
// TryStep returns the candidate state, whether the step satisfies rtol,
// and a suggested size for the next attempt.
type AdaptiveStepper interface {
	Stepper
	TryStep(sys System, y State, t, dt, rtol float64) (next State, accepted bool, dtNext float64)
}
