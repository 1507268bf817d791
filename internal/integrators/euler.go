package integrators

import "github.com/san-kum/solarsim/internal/ode"

type Euler struct{}

func NewEuler() *Euler {
	return &Euler{}
}

func (e *Euler) Step(sys ode.System, y ode.State, t, dt float64) ode.State {
	dy := sys.Derive(t, y)
	next := make(ode.State, len(y))
	for i := range y {
		next[i] = y[i] + dt*dy[i]
	}
	return next
}
