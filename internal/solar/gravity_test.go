package solar_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/solarsim/internal/astro"
	"github.com/san-kum/solarsim/internal/ode"
	"github.com/san-kum/solarsim/internal/solar"
)

var _ = Describe("Gravity", func() {
	// Scaled fixture: G=1, two unit separations keep the arithmetic legible.
	consts := astro.Constants{G: 1, AU: 1, SolarMass: 1, SecondsPerDay: 1, DaysPerYear: 365.25}

	newPair := func(m1, m2 float64) *solar.Gravity {
		cat, err := solar.New(twoBodyFixture(m1, m2), consts)
		Expect(err).NotTo(HaveOccurred())
		return solar.NewGravity(cat)
	}

	Describe("Derive", func() {
		It("accelerates two bodies toward each other by G*m/r^2", func() {
			g := newPair(2.0, 3.0)

			// Body a at origin, body b at x=2, both at rest.
			y := ode.State{
				0, 0, 0, 2, 0, 0, // positions
				0, 0, 0, 0, 0, 0, // velocities
			}
			dy := g.Derive(0, y)

			// Velocities pass through as position derivatives.
			Expect(dy[:6]).To(Equal(y[6:]))

			// a feels G*m_b/r^2 = 3/4 toward +x; b feels 2/4 toward -x.
			Expect(dy[6]).To(BeNumerically("~", 0.75, 1e-12))
			Expect(dy[7]).To(BeZero())
			Expect(dy[8]).To(BeZero())
			Expect(dy[9]).To(BeNumerically("~", -0.5, 1e-12))
		})

		It("treats a coincident pair as contributing no force", func() {
			g := newPair(1.0, 1.0)

			y := ode.State{
				1, 1, 1, 1, 1, 1,
				0, 0, 0, 0, 0, 0,
			}
			dy := g.Derive(0, y)

			Expect(ode.State(dy).IsValid()).To(BeTrue())
			for i := 6; i < 12; i++ {
				Expect(dy[i]).To(BeZero())
			}
		})

		It("weakens the force when softening is set", func() {
			hard := newPair(1.0, 1.0)
			soft := newPair(1.0, 1.0)
			soft.Softening = 1.0

			y := ode.State{
				0, 0, 0, 1, 0, 0,
				0, 0, 0, 0, 0, 0,
			}
			aHard := hard.Derive(0, y)[6]
			aSoft := soft.Derive(0, y)[6]

			Expect(aSoft).To(BeNumerically("<", aHard))
			Expect(aSoft).To(BeNumerically(">", 0))
		})
	})

	Describe("diagnostics", func() {
		It("reports negative total energy for a bound pair", func() {
			g := newPair(1.0, 1e-6)

			// Circular orbit of the light body: v = sqrt(G*M/r) = 1.
			y := ode.State{
				0, 0, 0, 1, 0, 0,
				0, 0, 0, 0, 1, 0,
			}
			Expect(g.Energy(y)).To(BeNumerically("<", 0))
		})

		It("sums momentum and angular momentum over bodies", func() {
			g := newPair(2.0, 1.0)

			y := ode.State{
				0, 0, 0, 1, 0, 0,
				1, 0, 0, 0, 1, 0,
			}
			p := g.Momentum(y)
			Expect(p).To(Equal(solar.Vec3{X: 2, Y: 1, Z: 0}))

			l := g.AngularMomentum(y)
			// Only the second body contributes: r x v = (1,0,0) x (0,1,0) = (0,0,1).
			Expect(l).To(Equal(solar.Vec3{X: 0, Y: 0, Z: 1}))
		})
	})
})

// twoBodyFixture builds a minimal two-body system: a star and a planet with unit
// orbital elements.
func twoBodyFixture(m1, m2 float64) []solar.Body {
	return []solar.Body{
		{Name: "a", Mass: m1, Radius: 0, Color: "gold", Category: solar.CategoryStar},
		{
			Name: "b", Mass: m2, Radius: 0, Color: "gray", Category: solar.CategoryPlanet,
			SemiMajorAxis: 1, Eccentricity: 0, OrbitalPeriod: 1,
		},
	}
}
