// Package astro holds the physical constants used throughout the
// simulator. Constants are plain values injected at construction time so
// that tests can run with scaled fixtures instead of the real solar system.
package astro

// Constants groups the physical and conversion constants the simulation
// depends on. A Constants value is treated as immutable once created.
type Constants struct {
	// G is the gravitational constant in m^3 kg^-1 s^-2.
	G float64
	// AU is one astronomical unit in meters.
	AU float64
	// SolarMass is the mass of the Sun in kg.
	SolarMass float64
	// SecondsPerDay converts simulation days to SI seconds.
	SecondsPerDay float64
	// DaysPerYear is the length of a Julian year in days.
	DaysPerYear float64
	// C is the speed of light in m/s. Informational only; the model is
	// strictly Newtonian.
	C float64
}

// Default returns the standard constant set.
func Default() Constants {
	return Constants{
		G:             6.67430e-11,
		AU:            1.49597870700e11,
		SolarMass:     1.989e30,
		SecondsPerDay: 86400,
		DaysPerYear:   365.25,
		C:             299792458,
	}
}
