package integrators

import "github.com/san-kum/solarsim/internal/ode"

// Leapfrog is a kick-drift-kick symplectic stepper. It assumes the state
// layout used by the gravity system: the first half is positions, the
// second half velocities, with the derivative's second half being the
// accelerations.
type Leapfrog struct {
	scratch ode.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys ode.System, y ode.State, t, dt float64) ode.State {
	n := len(y)
	half := n / 2

	if len(l.scratch) != n {
		l.scratch = make(ode.State, n)
	}

	next := make(ode.State, n)
	dy := sys.Derive(t, y)
	halfDt := dt * 0.5

	for i := 0; i < half; i++ {
		l.scratch[half+i] = y[half+i] + dy[half+i]*halfDt
	}

	for i := 0; i < half; i++ {
		next[i] = y[i] + l.scratch[half+i]*dt
		l.scratch[i] = next[i]
	}

	dyNew := sys.Derive(t+dt, l.scratch)

	for i := 0; i < half; i++ {
		next[half+i] = l.scratch[half+i] + dyNew[half+i]*halfDt
	}

	return next
}
