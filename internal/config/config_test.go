package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Integrator != "rk45" {
		t.Errorf("expected integrator rk45, got %s", cfg.Integrator)
	}
	if cfg.Span() <= 0 {
		t.Error("span should be positive")
	}
	if cfg.Steps < 2 {
		t.Error("steps should allow at least two samples")
	}
	if cfg.Rtol <= 0 {
		t.Error("rtol should be positive")
	}
}

func TestSpanYearsPrecedence(t *testing.T) {
	cfg := &Config{SpanDays: 100, Years: 2}
	if got := cfg.Span(); got != 730.5 {
		t.Errorf("expected years to win: got %f, want 730.5", got)
	}

	cfg = &Config{SpanDays: 100}
	if got := cfg.Span(); got != 100 {
		t.Errorf("expected span_days fallback: got %f", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	want := DefaultConfig()
	want.Years = 5
	want.Softening = 1e6
	want.Dataset = "bodies.yaml"

	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if got.Years != want.Years || got.Softening != want.Softening || got.Dataset != want.Dataset {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("steps: 42\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Steps != 42 {
		t.Errorf("expected steps 42, got %d", cfg.Steps)
	}
	if cfg.Rtol != DefaultRtol {
		t.Errorf("expected default rtol, got %g", cfg.Rtol)
	}
	if cfg.Integrator != DefaultIntegrator {
		t.Errorf("expected default integrator, got %s", cfg.Integrator)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("year")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Span() != 365.25 {
		t.Errorf("expected one-year span, got %f", cfg.Span())
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}

	seen := map[string]bool{}
	for _, name := range presets {
		seen[name] = true
	}
	for _, want := range []string{"year", "decade", "century", "inner"} {
		if !seen[want] {
			t.Errorf("missing preset %q", want)
		}
	}
}
