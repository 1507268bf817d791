package solar

// defaultBodies is the built-in solar-system dataset: IAU/NASA fact-sheet
// values in SI units, periods in days.
func defaultBodies() []Body {
	return []Body{
		{
			Name:     "Sun",
			Mass:     1.989e30,
			Radius:   6.9634e8,
			Color:    "gold",
			Category: CategoryStar,
		},
		{
			Name:          "Mercury",
			Mass:          3.301e23,
			Radius:        2.4397e6,
			Color:         "gray",
			Category:      CategoryPlanet,
			SemiMajorAxis: 5.791e10,
			Eccentricity:  0.2056,
			OrbitalPeriod: 87.97,
		},
		{
			Name:          "Venus",
			Mass:          4.867e24,
			Radius:        6.0518e6,
			Color:         "orange",
			Category:      CategoryPlanet,
			SemiMajorAxis: 1.0821e11,
			Eccentricity:  0.0068,
			OrbitalPeriod: 224.70,
		},
		{
			Name:          "Earth",
			Mass:          5.972e24,
			Radius:        6.371e6,
			Color:         "royalblue",
			Category:      CategoryPlanet,
			SemiMajorAxis: 1.496e11,
			Eccentricity:  0.0167,
			OrbitalPeriod: 365.25,
		},
		{
			Name:          "Mars",
			Mass:          6.417e23,
			Radius:        3.3895e6,
			Color:         "red",
			Category:      CategoryPlanet,
			SemiMajorAxis: 2.2794e11,
			Eccentricity:  0.0934,
			OrbitalPeriod: 686.98,
		},
		{
			Name:          "Jupiter",
			Mass:          1.898e27,
			Radius:        6.9911e7,
			Color:         "peru",
			Category:      CategoryPlanet,
			SemiMajorAxis: 7.7857e11,
			Eccentricity:  0.0489,
			OrbitalPeriod: 4332.59,
		},
		{
			Name:          "Saturn",
			Mass:          5.683e26,
			Radius:        5.8232e7,
			Color:         "khaki",
			Category:      CategoryPlanet,
			SemiMajorAxis: 1.4335e12,
			Eccentricity:  0.0565,
			OrbitalPeriod: 10759.22,
		},
		{
			Name:          "Uranus",
			Mass:          8.681e25,
			Radius:        2.5362e7,
			Color:         "lightseagreen",
			Category:      CategoryPlanet,
			SemiMajorAxis: 2.8725e12,
			Eccentricity:  0.0457,
			OrbitalPeriod: 30688.5,
		},
		{
			Name:          "Neptune",
			Mass:          1.024e26,
			Radius:        2.4622e7,
			Color:         "mediumblue",
			Category:      CategoryPlanet,
			SemiMajorAxis: 4.4951e12,
			Eccentricity:  0.0113,
			OrbitalPeriod: 60190,
		},
	}
}
