package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/solar"
)

// OrbitMap draws the ecliptic-plane (XY) view of a run on a braille
// canvas. upTo limits trajectories to the first samples; pass
// res.Samples for the whole run. The view is centered on the origin and
// scaled so every plotted point fits.
func OrbitMap(res *sim.Result, width, height, upTo int) string {
	if upTo < 1 {
		upTo = 1
	}
	if upTo > res.Samples {
		upTo = res.Samples
	}

	// Symmetric extent around the origin.
	extent := 0.0
	for _, tr := range res.Trajectories {
		for k := 0; k < upTo; k++ {
			extent = maxOf(extent, abs64(tr[k].Pos.X), abs64(tr[k].Pos.Y))
		}
	}
	if extent == 0 {
		extent = 1
	}
	extent *= 1.05

	dotsW := width * 2
	dotsH := height * 4
	toDots := func(x, y float64) (int, int) {
		dx := int((x/extent + 1) / 2 * float64(dotsW-1))
		dy := int((1 - y/extent) / 2 * float64(dotsH-1))
		return dx, dy
	}

	c := NewCanvas(width, height)
	for i, tr := range res.Trajectories {
		px, py := toDots(tr[0].Pos.X, tr[0].Pos.Y)
		for k := 1; k < upTo; k++ {
			x, y := toDots(tr[k].Pos.X, tr[k].Pos.Y)
			c.Line(px, py, x, y)
			px, py = x, y
		}
		// Emphasize the current position; the star gets a ring.
		if res.Bodies[i].Category == solar.CategoryStar {
			c.Circle(px, py, 2)
		}
		c.Set(px, py)
	}

	return c.String()
}

// Legend lists the run's bodies in their dataset colors.
func Legend(res *sim.Result) string {
	parts := make([]string, len(res.Bodies))
	for i, b := range res.Bodies {
		parts[i] = BodyStyle(b.Color).Render("● " + b.Name)
	}
	return strings.Join(parts, "  ")
}

// EnergyChart plots total mechanical energy over the run. The values
// are rescaled to relative deviation from the initial energy, since
// absolute solar-system energies dwarf the drift.
func EnergyChart(res *sim.Result, width, height int) string {
	e0 := res.Energies[0]
	rel := make([]float64, len(res.Energies))
	for i, e := range res.Energies {
		if e0 != 0 {
			rel[i] = (e - e0) / abs64(e0)
		} else {
			rel[i] = e
		}
	}

	graph := asciigraph.Plot(rel,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("relative energy drift over %.1f days", res.SpanDays)),
	)
	return graph
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxOf(m float64, vals ...float64) float64 {
	for _, v := range vals {
		if v > m {
			m = v
		}
	}
	return m
}
