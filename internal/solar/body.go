package solar

type Category string

const (
	CategoryStar   Category = "star"
	CategoryPlanet Category = "planet"
)

// Body is the static description of one celestial body. It is a single
// tagged record: the orbital elements are meaningful only for planets and
// stay zero for stars.
type Body struct {
	Name     string
	Mass     float64 // kg
	Radius   float64 // m
	Color    string
	Category Category

	// Planet-only orbital elements.
	SemiMajorAxis float64 // m
	Eccentricity  float64 // dimensionless, [0, 1)
	OrbitalPeriod float64 // days; informational, not used by the integrator
}

func (b Body) validate(id string) *DataFormatError {
	fail := func(field, reason string) *DataFormatError {
		return &DataFormatError{ID: id, Field: field, Reason: reason}
	}

	if b.Name == "" {
		return fail("name", "must not be empty")
	}
	if b.Mass <= 0 {
		return fail("mass", "must be positive")
	}
	if b.Radius < 0 {
		return fail("radius", "must not be negative")
	}

	switch b.Category {
	case CategoryStar:
		return nil
	case CategoryPlanet:
		if b.SemiMajorAxis <= 0 {
			return fail("semi_major_axis", "must be positive")
		}
		if b.Eccentricity < 0 || b.Eccentricity >= 1 {
			return fail("eccentricity", "must be in [0, 1)")
		}
		if b.OrbitalPeriod <= 0 {
			return fail("orbital_period", "must be positive")
		}
		return nil
	default:
		return fail("type", "must be star or planet")
	}
}
