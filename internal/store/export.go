package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/solarsim/internal/sim"
)

// ExportData is the JSON export shape: run parameters plus per-body
// trajectories keyed by body name.
type ExportData struct {
	SpanDays    float64                   `json:"span_days"`
	Samples     int                       `json:"samples"`
	Rtol        float64                   `json:"rtol"`
	Integrator  string                    `json:"integrator"`
	EnergyDrift float64                   `json:"energy_drift"`
	Times       []float64                 `json:"times_days"`
	Bodies      map[string]sim.Trajectory `json:"bodies"`
}

func WriteJSON(w io.Writer, res *sim.Result) error {
	data := ExportData{
		SpanDays:    res.SpanDays,
		Samples:     res.Samples,
		Rtol:        res.Rtol,
		Integrator:  res.Integrator,
		EnergyDrift: res.EnergyDrift(),
		Times:       res.Times,
		Bodies:      make(map[string]sim.Trajectory, len(res.Bodies)),
	}
	for i, b := range res.Bodies {
		data.Bodies[b.Name] = res.Trajectories[i]
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// WriteCSV writes one row per sample time: the time in days, then six
// columns per body in catalog order (position then velocity, SI units).
func WriteCSV(w io.Writer, res *sim.Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"time_days"}
	for _, b := range res.Bodies {
		for _, axis := range []string{"x", "y", "z", "vx", "vy", "vz"} {
			header = append(header, fmt.Sprintf("%s_%s", b.Name, axis))
		}
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

	for k := 0; k < res.Samples; k++ {
		row := make([]string, 0, len(header))
		row = append(row, f(res.Times[k]))
		for i := range res.Bodies {
			s := res.Trajectories[i][k]
			row = append(row,
				f(s.Pos.X), f(s.Pos.Y), f(s.Pos.Z),
				f(s.Vel.X), f(s.Vel.Y), f(s.Vel.Z))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return cw.Error()
}
