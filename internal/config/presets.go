package config

var presets = map[string]func() *Config{
	"phillips": func() *Config {
		// Classic two-layer baroclinically unstable setup.
		cfg := DefaultConfig()
		cfg.U = []float64{0.1, 0.0}
		cfg.Mu = 0.02
		return cfg
	},
	"barotropic": func() *Config {
		cfg := DefaultConfig()
		cfg.Nlayers = 1
		cfg.Rho = []float64{1.0}
		cfg.H = []float64{1.0}
		cfg.U = []float64{0.0}
		cfg.Mu = 0.0
		return cfg
	},
	"topographic": func() *Config {
		// Bottom drag off so topographic steering dominates; callers
		// supply eta through qg.Inputs directly.
		cfg := DefaultConfig()
		cfg.U = []float64{0.0, 0.0}
		cfg.Mu = 0.0
		return cfg
	},
}

// GetPreset returns a named configuration, or nil when unknown.
func GetPreset(name string) *Config {
	f, ok := presets[name]
	if !ok {
		return nil
	}
	return f()
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	return names
}
