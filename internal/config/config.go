package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/solarsim/internal/sim"
)

const (
	DefaultSpanDays   = 365.25
	DefaultSteps      = 1000
	DefaultRtol       = 1e-8
	DefaultIntegrator = "rk45"
)

type Config struct {
	// SpanDays is the simulated time span. Years, when set, takes
	// precedence and is converted at 365.25 days per year.
	SpanDays float64 `yaml:"span_days"`
	Years    float64 `yaml:"years"`

	Steps      int     `yaml:"steps"`
	Rtol       float64 `yaml:"rtol"`
	Softening  float64 `yaml:"softening"`
	Integrator string  `yaml:"integrator"`

	// Dataset is a path to a YAML body catalog; empty means the built-in
	// Sun + 8 planets.
	Dataset string `yaml:"dataset"`

	// ExportDir receives run exports; empty disables them.
	ExportDir string `yaml:"export_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		SpanDays:   DefaultSpanDays,
		Steps:      DefaultSteps,
		Rtol:       DefaultRtol,
		Integrator: DefaultIntegrator,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Span resolves the configured time span to days.
func (c *Config) Span() float64 {
	if c.Years > 0 {
		return c.Years * 365.25
	}
	return c.SpanDays
}

// SimConfig maps the file-level settings onto the simulator's numerics.
func (c *Config) SimConfig() sim.Config {
	return sim.Config{
		Integrator: c.Integrator,
		Rtol:       c.Rtol,
		Softening:  c.Softening,
	}
}
