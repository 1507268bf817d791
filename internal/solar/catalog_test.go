package solar_test

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/solarsim/internal/astro"
	"github.com/san-kum/solarsim/internal/solar"
)

const twoBodyYAML = `
star:
  name: Sol
  mass: 1.989e30
  radius: 6.9634e8
  color: gold
  type: star
inner:
  name: Hermes
  mass: 3.301e23
  radius: 2.4397e6
  color: gray
  type: planet
  semi_major_axis: 5.791e10
  eccentricity: 0.2056
  orbital_period: 87.97
outer:
  name: Gaia
  mass: 5.972e24
  radius: 6.371e6
  color: royalblue
  type: planet
  semi_major_axis: 1.496e11
  eccentricity: 0.0167
  orbital_period: 365.25
`

var _ = Describe("Catalog", func() {
	consts := astro.Default()

	Describe("Load", func() {
		It("parses a valid dataset into catalog order", func() {
			cat, err := solar.Load(strings.NewReader(twoBodyYAML), consts)
			Expect(err).NotTo(HaveOccurred())
			Expect(cat.Len()).To(Equal(3))

			bodies := cat.Bodies()
			Expect(bodies[0].Name).To(Equal("Sol"))
			Expect(bodies[0].Category).To(Equal(solar.CategoryStar))
			Expect(bodies[1].Name).To(Equal("Hermes"))
			Expect(bodies[2].Name).To(Equal("Gaia"))
			Expect(bodies[2].Eccentricity).To(BeNumerically("~", 0.0167, 1e-12))
		})

		It("rejects a missing required field, naming body and field", func() {
			broken := strings.Replace(twoBodyYAML, "  mass: 5.972e24\n", "", 1)
			_, err := solar.Load(strings.NewReader(broken), consts)

			var dfe *solar.DataFormatError
			Expect(err).To(BeAssignableToTypeOf(dfe))
			dfe = err.(*solar.DataFormatError)
			Expect(dfe.ID).To(Equal("outer"))
			Expect(dfe.Field).To(Equal("mass"))
		})

		It("rejects a planet missing its orbital elements", func() {
			broken := strings.Replace(twoBodyYAML, "  semi_major_axis: 5.791e10\n", "", 1)
			_, err := solar.Load(strings.NewReader(broken), consts)

			var dfe *solar.DataFormatError
			Expect(err).To(BeAssignableToTypeOf(dfe))
			dfe = err.(*solar.DataFormatError)
			Expect(dfe.ID).To(Equal("inner"))
			Expect(dfe.Field).To(Equal("semi_major_axis"))
		})

		It("rejects out-of-range values", func() {
			for bad, field := range map[string]string{
				"  mass: -1.0e24\n":       "mass",
				"  eccentricity: 1.0\n":   "eccentricity",
				"  eccentricity: -0.2\n":  "eccentricity",
				"  orbital_period: 0.0\n": "orbital_period",
			} {
				var good string
				switch field {
				case "mass":
					good = "  mass: 5.972e24\n"
				case "eccentricity":
					good = "  eccentricity: 0.0167\n"
				case "orbital_period":
					good = "  orbital_period: 365.25\n"
				}
				broken := strings.Replace(twoBodyYAML, good, bad, 1)
				_, err := solar.Load(strings.NewReader(broken), consts)

				var dfe *solar.DataFormatError
				Expect(err).To(BeAssignableToTypeOf(dfe), "replacing %q", good)
				Expect(err.(*solar.DataFormatError).Field).To(Equal(field))
			}
		})

		It("rejects an unknown category", func() {
			broken := strings.Replace(twoBodyYAML, "type: star", "type: comet", 1)
			_, err := solar.Load(strings.NewReader(broken), consts)

			var dfe *solar.DataFormatError
			Expect(err).To(BeAssignableToTypeOf(dfe))
			Expect(err.(*solar.DataFormatError).Field).To(Equal("type"))
		})
	})

	Describe("Default", func() {
		It("holds the Sun and eight planets", func() {
			cat := solar.Default(consts)
			Expect(cat.Len()).To(Equal(9))

			sun, err := cat.Sun()
			Expect(err).NotTo(HaveOccurred())
			Expect(sun.Name).To(Equal("Sun"))

			names := []string{}
			for _, b := range cat.Bodies() {
				names = append(names, b.Name)
			}
			Expect(names).To(Equal([]string{
				"Sun", "Mercury", "Venus", "Earth", "Mars",
				"Jupiter", "Saturn", "Uranus", "Neptune",
			}))
		})

		It("yields identical catalogs on repeated construction", func() {
			a := solar.Default(consts)
			b := solar.Default(consts)
			Expect(a.Bodies()).To(Equal(b.Bodies()))
		})
	})

	Describe("Sun", func() {
		It("fails with ErrNoStar when the dataset has no star", func() {
			planetOnly := `
p:
  name: Lonely
  mass: 1.0e24
  radius: 1.0e6
  color: gray
  type: planet
  semi_major_axis: 1.0e11
  eccentricity: 0.1
  orbital_period: 300
`
			cat, err := solar.Load(strings.NewReader(planetOnly), consts)
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.Sun()
			Expect(err).To(MatchError(solar.ErrNoStar))
		})
	})

	Describe("InitialState", func() {
		It("puts the star at rest at the origin", func() {
			cat := solar.Default(consts)
			sun, _ := cat.Sun()

			pos, vel := cat.InitialState(sun)
			Expect(pos).To(Equal(solar.Vec3{}))
			Expect(vel).To(Equal(solar.Vec3{}))
		})

		It("seeds planets on a circular orbit at the semi-major axis", func() {
			cat := solar.Default(consts)
			earth, ok := cat.Body("Earth")
			Expect(ok).To(BeTrue())

			pos, vel := cat.InitialState(earth)
			Expect(pos.X).To(Equal(earth.SemiMajorAxis))
			Expect(pos.Y).To(BeZero())
			Expect(pos.Z).To(BeZero())

			want := math.Sqrt(consts.G * consts.SolarMass / earth.SemiMajorAxis)
			Expect(vel.Y).To(BeNumerically("~", want, want*1e-12))
			Expect(vel.X).To(BeZero())
			// Earth's circular speed is about 29.8 km/s.
			Expect(vel.Y).To(BeNumerically("~", 2.98e4, 2e2))
		})
	})
})
