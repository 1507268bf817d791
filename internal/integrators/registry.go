package integrators

import (
	"fmt"
	"sort"

	"github.com/san-kum/solarsim/internal/ode"
)

var byName = map[string]func() ode.Stepper{
	"euler":    func() ode.Stepper { return NewEuler() },
	"rk4":      func() ode.Stepper { return NewRK4() },
	"rk45":     func() ode.Stepper { return NewRK45() },
	"leapfrog": func() ode.Stepper { return NewLeapfrog() },
}

// New returns a fresh stepper for the given name.
func New(name string) (ode.Stepper, error) {
	fn, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
	return fn(), nil
}

func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
