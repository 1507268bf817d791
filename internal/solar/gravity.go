package solar

import (
	"math"

	"github.com/san-kum/solarsim/internal/astro"
	"github.com/san-kum/solarsim/internal/ode"
)

// Gravity is the N-body equations of motion over a catalog, exposed as
// an ode.System. State layout: positions of all bodies (3 components
// each), then velocities of all bodies. The flattening stays inside this
// adapter; everything above it works with Vec3 samples.
//
// Each body's acceleration is summed independently over all others, an
// O(N^2) pass per evaluation. At the fixed N of the solar system this is
// inconsequential and keeps every accumulation self-contained.
type Gravity struct {
	bodies []Body
	consts astro.Constants

	// Softening is an optional Plummer softening length in meters added
	// in quadrature to every pair separation. At the default of zero, a
	// pair at exactly zero separation contributes no force: the
	// singularity is skipped, not resolved. Well-separated solar-system
	// bodies never hit this case.
	Softening float64
}

var _ ode.Energied = (*Gravity)(nil)

func NewGravity(cat *Catalog) *Gravity {
	return &Gravity{
		bodies: cat.Bodies(),
		consts: cat.Constants(),
	}
}

func (g *Gravity) Dim() int { return 6 * len(g.bodies) }

// InitialState builds the flat initial state vector from the per-body
// initial conditions.
func (g *Gravity) InitialState(cat *Catalog) ode.State {
	n := len(g.bodies)
	y := make(ode.State, 6*n)
	for i, b := range g.bodies {
		pos, vel := cat.InitialState(b)
		y[3*i], y[3*i+1], y[3*i+2] = pos.X, pos.Y, pos.Z
		y[3*n+3*i], y[3*n+3*i+1], y[3*n+3*i+2] = vel.X, vel.Y, vel.Z
	}
	return y
}

func (g *Gravity) Derive(t float64, y ode.State) ode.State {
	n := len(g.bodies)
	dy := make(ode.State, 6*n)
	eps2 := g.Softening * g.Softening

	// d(position)/dt = velocity.
	copy(dy[:3*n], y[3*n:])

	for i := 0; i < n; i++ {
		xi, yi, zi := y[3*i], y[3*i+1], y[3*i+2]
		var ax, ay, az float64

		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			rx := y[3*j] - xi
			ry := y[3*j+1] - yi
			rz := y[3*j+2] - zi
			d2 := rx*rx + ry*ry + rz*rz + eps2
			if d2 == 0 {
				continue
			}
			inv3 := 1 / (d2 * math.Sqrt(d2))
			f := g.consts.G * g.bodies[j].Mass * inv3
			ax += f * rx
			ay += f * ry
			az += f * rz
		}

		dy[3*n+3*i] = ax
		dy[3*n+3*i+1] = ay
		dy[3*n+3*i+2] = az
	}

	return dy
}

// Energy returns the total mechanical energy: kinetic plus pairwise
// gravitational potential.
func (g *Gravity) Energy(y ode.State) float64 {
	n := len(g.bodies)
	ke := 0.0
	pe := 0.0

	for i := 0; i < n; i++ {
		vx, vy, vz := y[3*n+3*i], y[3*n+3*i+1], y[3*n+3*i+2]
		ke += 0.5 * g.bodies[i].Mass * (vx*vx + vy*vy + vz*vz)

		for j := i + 1; j < n; j++ {
			rx := y[3*j] - y[3*i]
			ry := y[3*j+1] - y[3*i+1]
			rz := y[3*j+2] - y[3*i+2]
			r := math.Sqrt(rx*rx + ry*ry + rz*rz + g.Softening*g.Softening)
			if r == 0 {
				continue
			}
			pe -= g.consts.G * g.bodies[i].Mass * g.bodies[j].Mass / r
		}
	}

	return ke + pe
}

// Momentum returns the total linear momentum. The star is not anchored,
// so this is conserved but not forced to zero.
func (g *Gravity) Momentum(y ode.State) Vec3 {
	n := len(g.bodies)
	var p Vec3
	for i := 0; i < n; i++ {
		m := g.bodies[i].Mass
		p.X += m * y[3*n+3*i]
		p.Y += m * y[3*n+3*i+1]
		p.Z += m * y[3*n+3*i+2]
	}
	return p
}

// AngularMomentum returns the total angular momentum about the origin.
func (g *Gravity) AngularMomentum(y ode.State) Vec3 {
	n := len(g.bodies)
	var l Vec3
	for i := 0; i < n; i++ {
		r := Vec3{y[3*i], y[3*i+1], y[3*i+2]}
		v := Vec3{y[3*n+3*i], y[3*n+3*i+1], y[3*n+3*i+2]}
		l = l.Add(r.Cross(v).Scale(g.bodies[i].Mass))
	}
	return l
}
