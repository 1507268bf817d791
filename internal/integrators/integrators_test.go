package integrators

import (
	"math"
	"testing"

	"github.com/san-kum/solarsim/internal/ode"
)

// kepler2D is a point mass orbiting a fixed unit-GM center, laid out as
// [x, y, vx, vy] with positions first, matching the gravity system layout
// Leapfrog assumes.
type kepler2D struct{}

func (kepler2D) Dim() int { return 4 }

func (kepler2D) Derive(t float64, y ode.State) ode.State {
	r3 := math.Pow(y[0]*y[0]+y[1]*y[1], 1.5)
	return ode.State{y[2], y[3], -y[0] / r3, -y[1] / r3}
}

func (kepler2D) Energy(y ode.State) float64 {
	r := math.Hypot(y[0], y[1])
	v2 := y[2]*y[2] + y[3]*y[3]
	return 0.5*v2 - 1/r
}

func TestLeapfrog_CircularOrbit(t *testing.T) {
	integrator := NewLeapfrog()
	sys := kepler2D{}

	// Unit circular orbit: r=1, v=1, period 2*pi.
	y := ode.State{1, 0, 0, 1}
	dt := 1e-3
	steps := int(2 * math.Pi / dt)

	for i := 0; i < steps; i++ {
		y = integrator.Step(sys, y, float64(i)*dt, dt)
	}

	r := math.Hypot(y[0], y[1])
	if math.Abs(r-1) > 1e-3 {
		t.Errorf("orbit radius drifted to %f after one period", r)
	}
}

func TestLeapfrog_EnergyBounded(t *testing.T) {
	integrator := NewLeapfrog()
	sys := kepler2D{}

	y := ode.State{1, 0, 0, 1}
	e0 := sys.Energy(y)
	dt := 1e-3

	for i := 0; i < 50000; i++ {
		y = integrator.Step(sys, y, float64(i)*dt, dt)
	}

	drift := math.Abs(sys.Energy(y)-e0) / math.Abs(e0)
	if drift > 1e-4 {
		t.Errorf("symplectic energy drift too high: %e", drift)
	}
}

func TestRK4_MoreAccurateThanEuler(t *testing.T) {
	euler := NewEuler()
	rk4 := NewRK4()
	sys := &harmonicOscillator{}

	yE := ode.State{1.0, 0.0}
	yR := ode.State{1.0, 0.0}
	dt := 0.01

	for i := 0; i < 1000; i++ {
		yE = euler.Step(sys, yE, float64(i)*dt, dt)
		yR = rk4.Step(sys, yR, float64(i)*dt, dt)
	}

	// Analytic solution at t=10.
	wantX := math.Cos(10.0)
	if math.Abs(yR[0]-wantX) >= math.Abs(yE[0]-wantX) {
		t.Errorf("RK4 error %e not smaller than Euler error %e",
			math.Abs(yR[0]-wantX), math.Abs(yE[0]-wantX))
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range Names() {
		st, err := New(name)
		if err != nil {
			t.Fatalf("New(%q) failed: %v", name, err)
		}
		if st == nil {
			t.Fatalf("New(%q) returned nil stepper", name)
		}
	}

	if _, err := New("midpoint"); err == nil {
		t.Error("expected error for unknown integrator")
	}

	if _, ok := mustNew(t, "rk45").(ode.AdaptiveStepper); !ok {
		t.Error("rk45 should be adaptive")
	}
	if _, ok := mustNew(t, "rk4").(ode.AdaptiveStepper); ok {
		t.Error("rk4 should not be adaptive")
	}
}

func mustNew(t *testing.T, name string) ode.Stepper {
	t.Helper()
	st, err := New(name)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", name, err)
	}
	return st
}
