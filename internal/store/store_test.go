package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/solarsim/internal/sim"
	"github.com/san-kum/solarsim/internal/solar"
)

func testResult() *sim.Result {
	bodies := []solar.Body{
		{Name: "Sol", Mass: 1, Category: solar.CategoryStar, Color: "gold"},
		{Name: "Gaia", Mass: 1e-6, Category: solar.CategoryPlanet, Color: "blue",
			SemiMajorAxis: 1, Eccentricity: 0, OrbitalPeriod: 1},
	}
	return &sim.Result{
		SpanDays:      10,
		Samples:       2,
		Rtol:          1e-8,
		Integrator:    "rk45",
		AcceptedSteps: 17,
		Times:         []float64{0, 10},
		Bodies:        bodies,
		Trajectories: []sim.Trajectory{
			{
				{Time: 0, Pos: solar.Vec3{}, Vel: solar.Vec3{}},
				{Time: 10, Pos: solar.Vec3{X: 0.001}, Vel: solar.Vec3{}},
			},
			{
				{Time: 0, Pos: solar.Vec3{X: 1}, Vel: solar.Vec3{Y: 1}},
				{Time: 10, Pos: solar.Vec3{X: 0.5, Y: 0.8}, Vel: solar.Vec3{X: -0.8, Y: 0.5}},
			},
		},
		Energies: []float64{-1.0, -1.0000001},
	}
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.SpanDays != 10 {
		t.Errorf("expected span 10, got %f", meta.SpanDays)
	}
	if meta.Integrator != "rk45" {
		t.Errorf("expected integrator rk45, got %s", meta.Integrator)
	}
	if len(meta.Bodies) != 2 || meta.Bodies[0] != "Sol" {
		t.Errorf("unexpected body list %v", meta.Bodies)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(testResult()); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(testResult())
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "trajectories.csv")); os.IsNotExist(err) {
		t.Error("trajectories.csv not created")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, testResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}

	header := strings.Split(lines[0], ",")
	// time_days plus 6 columns per body.
	if len(header) != 1+2*6 {
		t.Errorf("expected 13 columns, got %d", len(header))
	}
	if header[0] != "time_days" {
		t.Errorf("expected time_days first, got %s", header[0])
	}
	if header[1] != "Sol_x" {
		t.Errorf("expected Sol_x second, got %s", header[1])
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, testResult()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if data.Samples != 2 {
		t.Errorf("expected 2 samples, got %d", data.Samples)
	}
	if _, ok := data.Bodies["Gaia"]; !ok {
		t.Error("Gaia trajectory missing from export")
	}
	if len(data.Bodies["Gaia"]) != 2 {
		t.Errorf("expected 2 Gaia samples, got %d", len(data.Bodies["Gaia"]))
	}
}
