package sim

import (
	"context"
	"math"

	"github.com/san-kum/solarsim/internal/integrators"
	"github.com/san-kum/solarsim/internal/ode"
	"github.com/san-kum/solarsim/internal/solar"
)

// Sample is one trajectory point of one body. Time is in days from the
// start of the run; position and velocity are SI.
type Sample struct {
	Time float64
	Pos  solar.Vec3
	Vel  solar.Vec3
}

// Trajectory is a body's samples in increasing time order.
type Trajectory []Sample

// Config selects the numerics of a run. Zero values fall back to the
// defaults noted per field.
type Config struct {
	// Integrator names the stepper; empty means "rk45".
	Integrator string
	// Rtol is the per-step relative tolerance; zero means 1e-8.
	Rtol float64
	// Softening is the Plummer softening length in meters, default zero.
	Softening float64
	// MaxSteps bounds the integration loop; zero means the solver default.
	MaxSteps int
}

func (c Config) withDefaults() Config {
	if c.Integrator == "" {
		c.Integrator = "rk45"
	}
	if c.Rtol <= 0 {
		c.Rtol = 1e-8
	}
	return c
}

// Result is a completed run: resampled trajectories for every catalog
// body plus run metadata. It is a value snapshot; reruns build a new one.
type Result struct {
	SpanDays      float64
	Samples       int
	Rtol          float64
	Integrator    string
	AcceptedSteps int

	// Times holds the sample times in days, shared by all trajectories.
	Times []float64
	// Bodies and Trajectories are parallel, in catalog order.
	Bodies       []solar.Body
	Trajectories []Trajectory
	// Energies is the total mechanical energy at each sample time.
	Energies []float64
}

// EnergyDrift is the relative change in total energy over the run,
// |E_end - E_start| / |E_start|.
func (r *Result) EnergyDrift() float64 {
	e0 := r.Energies[0]
	e1 := r.Energies[len(r.Energies)-1]
	if e0 == 0 {
		return math.Abs(e1)
	}
	return math.Abs((e1 - e0) / e0)
}

// TrajectoryOf returns the named body's trajectory.
func (r *Result) TrajectoryOf(name string) (Trajectory, bool) {
	for i, b := range r.Bodies {
		if b.Name == name {
			return r.Trajectories[i], true
		}
	}
	return nil, false
}

// Simulator runs the catalog's N-body dynamics and retains the most
// recent successful result for queries.
type Simulator struct {
	cat     *solar.Catalog
	grav    *solar.Gravity
	stepper ode.Stepper
	cfg     Config

	result *Result
}

// New builds a simulator over the catalog. The config's integrator name
// must be registered.
func New(cat *solar.Catalog, cfg Config) (*Simulator, error) {
	cfg = cfg.withDefaults()

	stepper, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	grav := solar.NewGravity(cat)
	grav.Softening = cfg.Softening

	return &Simulator{
		cat:     cat,
		grav:    grav,
		stepper: stepper,
		cfg:     cfg,
	}, nil
}

func (s *Simulator) Catalog() *solar.Catalog { return s.cat }
func (s *Simulator) Config() Config          { return s.cfg }

// Bodies returns the catalog's bodies in catalog order.
func (s *Simulator) Bodies() []solar.Body { return s.cat.Bodies() }

// Sun returns the catalog's unique star body.
func (s *Simulator) Sun() (solar.Body, error) { return s.cat.Sun() }

// Simulate integrates the system over spanDays and stores nSteps evenly
// spaced samples per body. On failure the previously stored result, if
// any, is left untouched.
func (s *Simulator) Simulate(ctx context.Context, spanDays float64, nSteps int) error {
	if nSteps < 2 {
		return ErrTooFewSamples
	}

	fail := func(err error) error {
		return &IntegrationError{SpanDays: spanDays, Steps: nSteps, Rtol: s.cfg.Rtol, Wrapped: err}
	}

	if spanDays <= 0 {
		return fail(ode.ErrBadSpan)
	}

	span := spanDays * s.cat.Constants().SecondsPerDay
	y0 := s.grav.InitialState(s.cat)

	sol, err := ode.Solve(ctx, s.grav, s.stepper, y0, span, ode.Options{
		Rtol:     s.cfg.Rtol,
		MaxSteps: s.cfg.MaxSteps,
	})
	if err != nil {
		return fail(err)
	}

	times, states := sol.Resample(nSteps)
	s.result = s.buildResult(spanDays, nSteps, sol.Len()-1, times, states)
	return nil
}

func (s *Simulator) buildResult(spanDays float64, nSteps, accepted int, times []float64, states []ode.State) *Result {
	bodies := s.cat.Bodies()
	n := len(bodies)
	perDay := s.cat.Constants().SecondsPerDay

	res := &Result{
		SpanDays:      spanDays,
		Samples:       nSteps,
		Rtol:          s.cfg.Rtol,
		Integrator:    s.cfg.Integrator,
		AcceptedSteps: accepted,
		Times:         make([]float64, nSteps),
		Bodies:        bodies,
		Trajectories:  make([]Trajectory, n),
		Energies:      make([]float64, nSteps),
	}
	for i := range res.Trajectories {
		res.Trajectories[i] = make(Trajectory, nSteps)
	}

	for k, y := range states {
		day := times[k] / perDay
		res.Times[k] = day
		res.Energies[k] = s.grav.Energy(y)

		for i := 0; i < n; i++ {
			res.Trajectories[i][k] = Sample{
				Time: day,
				Pos:  solar.Vec3{X: y[3*i], Y: y[3*i+1], Z: y[3*i+2]},
				Vel:  solar.Vec3{X: y[3*n+3*i], Y: y[3*n+3*i+1], Z: y[3*n+3*i+2]},
			}
		}
	}

	return res
}

// Result returns the most recent successful run.
func (s *Simulator) Result() (*Result, error) {
	if s.result == nil {
		return nil, ErrNoSimulation
	}
	return s.result, nil
}

// TrajectoryOf returns the named body's trajectory from the most recent
// run.
func (s *Simulator) TrajectoryOf(name string) (Trajectory, error) {
	if s.result == nil {
		return nil, ErrNoSimulation
	}
	tr, ok := s.result.TrajectoryOf(name)
	if !ok {
		return nil, ErrUnknownBody
	}
	return tr, nil
}

// StateAt returns one sample of the named body. A negative index counts
// from the end, so -1 is the final sample.
func (s *Simulator) StateAt(name string, idx int) (Sample, error) {
	tr, err := s.TrajectoryOf(name)
	if err != nil {
		return Sample{}, err
	}
	if idx < 0 {
		idx += len(tr)
	}
	if idx < 0 || idx >= len(tr) {
		return Sample{}, ErrUnknownSample
	}
	return tr[idx], nil
}

// EnergyDrift reports the relative energy change of the most recent run.
func (s *Simulator) EnergyDrift() (float64, error) {
	if s.result == nil {
		return 0, ErrNoSimulation
	}
	return s.result.EnergyDrift(), nil
}
