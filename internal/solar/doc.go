// Package solar describes the celestial bodies and their mutual
// gravitational dynamics.
//
// A [Catalog] holds the static description of each body (mass, radius,
// orbital elements) and derives initial positions and velocities. A
// [Gravity] system exposes the coupled equations of motion over the
// catalog in the flat state layout the ODE solver expects: all positions
// first, then all velocities, three components per body.
package solar
