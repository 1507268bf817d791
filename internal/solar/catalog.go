package solar

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/solarsim/internal/astro"
)

// Catalog is an immutable, ordered body set: the star first, planets by
// increasing semi-major axis. The injected constants travel with it so
// derived quantities use the same physics everywhere.
type Catalog struct {
	bodies []Body
	consts astro.Constants
}

// bodySpec is the on-disk attribute shape. Required numeric fields are
// pointers so a missing key is distinguishable from zero.
type bodySpec struct {
	Name          string   `yaml:"name"`
	Mass          *float64 `yaml:"mass"`
	Radius        *float64 `yaml:"radius"`
	Color         string   `yaml:"color"`
	Type          string   `yaml:"type"`
	SemiMajorAxis *float64 `yaml:"semi_major_axis"`
	Eccentricity  *float64 `yaml:"eccentricity"`
	OrbitalPeriod *float64 `yaml:"orbital_period"`
}

// Load reads a YAML mapping of body id to attributes. Any malformed or
// missing required attribute fails the whole load with a
// *DataFormatError naming the body and field.
func Load(r io.Reader, consts astro.Constants) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("solar: reading dataset: %w", err)
	}

	specs := make(map[string]bodySpec)
	if err := yaml.Unmarshal(data, &specs); err != nil {
		return nil, fmt.Errorf("solar: parsing dataset: %w", err)
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("solar: dataset holds no bodies")
	}

	// Deterministic order regardless of map iteration.
	ids := make([]string, 0, len(specs))
	for id := range specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bodies := make([]Body, 0, len(specs))
	for _, id := range ids {
		b, err := specs[id].toBody(id)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}

	return New(bodies, consts)
}

func LoadFile(path string, consts astro.Constants) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, consts)
}

func (s bodySpec) toBody(id string) (Body, error) {
	missing := func(field string) (Body, error) {
		return Body{}, &DataFormatError{ID: id, Field: field, Reason: "required field missing"}
	}

	if s.Name == "" {
		return missing("name")
	}
	if s.Mass == nil {
		return missing("mass")
	}
	if s.Radius == nil {
		return missing("radius")
	}
	if s.Color == "" {
		return missing("color")
	}
	if s.Type == "" {
		return missing("type")
	}

	b := Body{
		Name:     s.Name,
		Mass:     *s.Mass,
		Radius:   *s.Radius,
		Color:    s.Color,
		Category: Category(s.Type),
	}

	if b.Category == CategoryPlanet {
		if s.SemiMajorAxis == nil {
			return missing("semi_major_axis")
		}
		if s.Eccentricity == nil {
			return missing("eccentricity")
		}
		if s.OrbitalPeriod == nil {
			return missing("orbital_period")
		}
		b.SemiMajorAxis = *s.SemiMajorAxis
		b.Eccentricity = *s.Eccentricity
		b.OrbitalPeriod = *s.OrbitalPeriod
	}

	if err := b.validate(id); err != nil {
		return Body{}, err
	}
	return b, nil
}

// New builds a catalog from already-constructed bodies, validating each.
// Bodies are reordered: star first, then planets by semi-major axis.
func New(bodies []Body, consts astro.Constants) (*Catalog, error) {
	ordered := make([]Body, len(bodies))
	copy(ordered, bodies)

	for _, b := range ordered {
		if err := b.validate(b.Name); err != nil {
			return nil, err
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Category != ordered[j].Category {
			return ordered[i].Category == CategoryStar
		}
		return ordered[i].SemiMajorAxis < ordered[j].SemiMajorAxis
	})

	return &Catalog{bodies: ordered, consts: consts}, nil
}

// Default returns the built-in Sun + 8 planets dataset.
func Default(consts astro.Constants) *Catalog {
	cat, err := New(defaultBodies(), consts)
	if err != nil {
		// The built-in dataset is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return cat
}

func (c *Catalog) Len() int { return len(c.bodies) }

// Bodies returns a copy of the body list in catalog order.
func (c *Catalog) Bodies() []Body {
	out := make([]Body, len(c.bodies))
	copy(out, c.bodies)
	return out
}

func (c *Catalog) Constants() astro.Constants { return c.consts }

// Body looks a body up by name.
func (c *Catalog) Body(name string) (Body, bool) {
	for _, b := range c.bodies {
		if b.Name == name {
			return b, true
		}
	}
	return Body{}, false
}

// Sun returns the unique star-category body.
func (c *Catalog) Sun() (Body, error) {
	for _, b := range c.bodies {
		if b.Category == CategoryStar {
			return b, nil
		}
	}
	return Body{}, ErrNoStar
}

// InitialState derives the starting position and velocity for a body.
// The star sits at the origin at rest. A planet starts on the +X axis at
// its semi-major axis with the speed of an unperturbed circular orbit,
// v = sqrt(G*M_sun/a), along +Y. The eccentricity is not reflected in
// the starting point; eccentric motion emerges from the dynamics.
func (c *Catalog) InitialState(b Body) (pos, vel Vec3) {
	if b.Category == CategoryStar {
		return Vec3{}, Vec3{}
	}
	speed := math.Sqrt(c.consts.G * c.consts.SolarMass / b.SemiMajorAxis)
	return Vec3{X: b.SemiMajorAxis}, Vec3{Y: speed}
}
