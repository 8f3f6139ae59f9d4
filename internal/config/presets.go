package config

var Presets = map[string]map[string]*Config{
	"diffusion": {
		"short": {
			Model: "diffusion", Scheme: "inplace", Length: 50, Dt: 0.1, FinalTime: 1.0,
		},
		"long": {
			Model: "diffusion", Scheme: "inplace", Length: 50, Dt: 0.1, FinalTime: 10.0,
		},
		"fine": {
			Model: "diffusion", Scheme: "inplace", Length: 100, Dt: 0.01, FinalTime: 1.0,
		},
		"coarse": {
			Model: "diffusion", Scheme: "inplace", Length: 20, Dt: 0.25, FinalTime: 2.0,
		},
		// Largest step the explicit scheme tolerates; useful for watching
		// the stability margin.
		"edge": {
			Model: "diffusion", Scheme: "inplace", Length: 50, Dt: 0.5, FinalTime: 5.0,
		},
		"buffered": {
			Model: "diffusion", Scheme: "buffered", Length: 50, Dt: 0.1, FinalTime: 1.0,
		},
	},
	"euler": {
		"fine": {
			Model: "euler", H: 0.001,
		},
		"coarse": {
			Model: "euler", H: 0.1,
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	return names
}
