package stats

import (
	"errors"
	"math"

	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/solar"
)

var ErrTooShort = errors.New("stats: run too short to measure orbits")

// OrbitalStats summarizes one planet's motion over a run. All positions
// and velocities are heliocentric, measured relative to the star's own
// trajectory rather than the origin.
type OrbitalStats struct {
	Name string

	// MeanRadius and MeanSpeed average over all samples.
	MeanRadius float64
	MeanSpeed  float64

	// SpecificEnergy is v^2/2 - G*M/r averaged over samples; negative for
	// a bound orbit. SpecificAngularMomentum is |r x v| at the final
	// sample.
	SpecificEnergy          float64
	SpecificAngularMomentum float64

	// PeriodDays is the empirical orbital period, from the mean angular
	// sweep rate over the run. A run much shorter than the orbit still
	// yields an estimate, just a noisier one.
	PeriodDays float64

	// KeplerRatio is T^2/a^3 in SI units, using the empirical period and
	// mean radius. Kepler's third law predicts 4*pi^2/(G*M_sun) for every
	// planet.
	KeplerRatio float64
}

// KeplerExpected returns the value Kepler's third law predicts for
// T^2/a^3 around the catalog's star.
func KeplerExpected(cat *solar.Catalog) float64 {
	c := cat.Constants()
	return 4 * math.Pi * math.Pi / (c.G * c.SolarMass)
}

// Analyze computes per-planet statistics from a run. The star's samples
// are subtracted out so barycenter drift does not bias the radii.
func Analyze(res *sim.Result, cat *solar.Catalog) ([]OrbitalStats, error) {
	if res.Samples < 3 {
		return nil, ErrTooShort
	}

	star, err := cat.Sun()
	if err != nil {
		return nil, err
	}
	sunTr, ok := res.TrajectoryOf(star.Name)
	if !ok {
		return nil, solar.ErrNoStar
	}

	c := cat.Constants()
	mu := c.G * star.Mass

	var out []OrbitalStats
	for i, b := range res.Bodies {
		if b.Category != solar.CategoryPlanet {
			continue
		}
		out = append(out, analyzeOne(b.Name, res.Trajectories[i], sunTr, mu, c.SecondsPerDay))
	}
	return out, nil
}

func analyzeOne(name string, tr, sun sim.Trajectory, mu, secondsPerDay float64) OrbitalStats {
	n := len(tr)

	var sumR, sumV, sumE float64
	var sweep float64 // accumulated angle in radians

	var prev solar.Vec3
	for k := 0; k < n; k++ {
		r := tr[k].Pos.Sub(sun[k].Pos)
		v := tr[k].Vel.Sub(sun[k].Vel)

		rn := r.Norm()
		vn := v.Norm()
		sumR += rn
		sumV += vn
		sumE += vn*vn/2 - mu/rn

		if k > 0 {
			sweep += angleBetween(prev, r)
		}
		prev = r
	}

	rLast := tr[n-1].Pos.Sub(sun[n-1].Pos)
	vLast := tr[n-1].Vel.Sub(sun[n-1].Vel)

	st := OrbitalStats{
		Name:                    name,
		MeanRadius:              sumR / float64(n),
		MeanSpeed:               sumV / float64(n),
		SpecificEnergy:          sumE / float64(n),
		SpecificAngularMomentum: rLast.Cross(vLast).Norm(),
	}

	spanDays := tr[n-1].Time - tr[0].Time
	if sweep > 0 {
		st.PeriodDays = 2 * math.Pi * spanDays / sweep
		period := st.PeriodDays * secondsPerDay
		st.KeplerRatio = period * period / math.Pow(st.MeanRadius, 3)
	}
	return st
}

// angleBetween returns the unsigned angle between two vectors.
func angleBetween(a, b solar.Vec3) float64 {
	cross := a.Cross(b).Norm()
	dot := a.Dot(b)
	return math.Atan2(cross, dot)
}

// CorrelationMatrix returns the Pearson correlation of every pair of
// series. Series must share a length; a constant series correlates as
// zero with everything and one with itself.
func CorrelationMatrix(series [][]float64) [][]float64 {
	n := len(series)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := Pearson(series[i], series[j])
			out[i][j] = r
			out[j][i] = r
		}
	}
	return out
}

// Pearson returns the correlation coefficient of two equal-length
// series, or zero when either has no variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	var mx, my float64
	for i := 0; i < n; i++ {
		mx += x[i]
		my += y[i]
	}
	mx /= float64(n)
	my /= float64(n)

	var sxy, sxx, syy float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return 0
	}
	return sxy / math.Sqrt(sxx*syy)
}

// RadiusSeries extracts each planet's heliocentric distance over time,
// the natural input for CorrelationMatrix. The returned names parallel
// the series.
func RadiusSeries(res *sim.Result, cat *solar.Catalog) (names []string, series [][]float64, err error) {
	star, err := cat.Sun()
	if err != nil {
		return nil, nil, err
	}
	sunTr, ok := res.TrajectoryOf(star.Name)
	if !ok {
		return nil, nil, solar.ErrNoStar
	}

	for i, b := range res.Bodies {
		if b.Category != solar.CategoryPlanet {
			continue
		}
		tr := res.Trajectories[i]
		rs := make([]float64, len(tr))
		for k := range tr {
			rs[k] = tr[k].Pos.Sub(sunTr[k].Pos).Norm()
		}
		names = append(names, b.Name)
		series = append(series, rs)
	}
	return names, series, nil
}
