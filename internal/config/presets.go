package config

var Presets = map[string]*Config{
	"year": {
		SpanDays: 365.25, Steps: 1000, Rtol: 1e-8, Integrator: "rk45",
	},
	"decade": {
		Years: 10, Steps: 5000, Rtol: 1e-8, Integrator: "rk45",
	},
	"century": {
		Years: 100, Steps: 20000, Rtol: 1e-7, Integrator: "rk45",
	},
	// Inner planets complete many orbits inside a Martian year.
	"inner": {
		SpanDays: 687, Steps: 2000, Rtol: 1e-9, Integrator: "rk45",
	},
	"quick": {
		SpanDays: 30, Steps: 200, Rtol: 1e-6, Integrator: "rk45",
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
