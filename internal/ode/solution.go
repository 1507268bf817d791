package ode

import "sort"

// Solution is the dense result of a Solve call: every accepted step's
// time, state, and derivative, in increasing time order.
type Solution struct {
	times  []float64
	states []State
	derivs []State
}

func (s *Solution) append(t float64, y, dy State) {
	s.times = append(s.times, t)
	s.states = append(s.states, y.Clone())
	s.derivs = append(s.derivs, dy.Clone())
}

func (s *Solution) Len() int { return len(s.times) }

// Span returns the final integration time.
func (s *Solution) Span() float64 {
	return s.times[len(s.times)-1]
}

// At evaluates the solution at time t by cubic Hermite interpolation on
// the accepted-step interval containing t. Times outside the integrated
// span clamp to the endpoints.
func (s *Solution) At(t float64) State {
	n := len(s.times)
	if t <= s.times[0] {
		return s.states[0].Clone()
	}
	if t >= s.times[n-1] {
		return s.states[n-1].Clone()
	}

	hi := sort.SearchFloat64s(s.times, t)
	if s.times[hi] == t {
		return s.states[hi].Clone()
	}
	lo := hi - 1

	t0, t1 := s.times[lo], s.times[hi]
	h := t1 - t0
	u := (t - t0) / h

	// Hermite basis on [0,1].
	u2 := u * u
	u3 := u2 * u
	h00 := 2*u3 - 3*u2 + 1
	h10 := u3 - 2*u2 + u
	h01 := -2*u3 + 3*u2
	h11 := u3 - u2

	y0, y1 := s.states[lo], s.states[hi]
	f0, f1 := s.derivs[lo], s.derivs[hi]

	out := make(State, len(y0))
	for i := range out {
		out[i] = h00*y0[i] + h10*h*f0[i] + h01*y1[i] + h11*h*f1[i]
	}
	return out
}

// Resample evaluates the solution at n evenly spaced times covering the
// full span, endpoints included. n must be at least 2; the first and last
// samples are the stored endpoint states, not interpolants.
func (s *Solution) Resample(n int) ([]float64, []State) {
	span := s.Span()
	times := make([]float64, n)
	states := make([]State, n)

	for i := 0; i < n; i++ {
		t := span * float64(i) / float64(n-1)
		times[i] = t
		states[i] = s.At(t)
	}
	// Exact endpoints, immune to rounding in the division above.
	times[0] = s.times[0]
	states[0] = s.states[0].Clone()
	times[n-1] = span
	states[n-1] = s.states[len(s.states)-1].Clone()

	return times, states
}
