// Package ode provides the numerical primitives for integrating ordinary
// differential equations.
//
// The package defines the fundamental types shared by the simulator:
//
//   - [State]: flat vector representing system state
//   - [System]: interface for autonomous ODE systems (dY/dt = f(t, Y))
//   - [Stepper]: single-step integration method
//   - [Solve]: adaptive driver producing a dense [Solution]
//
// A Solution stores every accepted step together with its derivative and
// can be evaluated at arbitrary times by cubic Hermite interpolation, so
// callers can request output samples independently of the step sizes the
// driver chose.
//
// # Thread Safety
//
// Steppers carry scratch buffers and are NOT safe for concurrent use.
// Solutions are immutable after Solve returns and may be read freely.
package ode
