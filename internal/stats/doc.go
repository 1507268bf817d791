// Package stats derives orbital statistics from completed simulation
// runs.
//
// The headline check is Kepler's third law: for every planet the ratio
// T^2/a^3, built from the empirically measured period and mean orbital
// radius, should match 4*pi^2/(G*M_sun) independent of the planet.
package stats
