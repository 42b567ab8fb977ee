package config

var Presets = map[string]*Config{
	"classroom": {
		Radius: 0.02, Length: 0.2, Turns: 200, Current: 5.0,
		Trace: TraceConfig{MaxSteps: 4000},
		Grid:  GridConfig{Width: 80, Height: 24},
	},
	"single_loop": {
		Radius: 0.05, Length: 0.01, Turns: 1, Current: 10.0,
		Trace: TraceConfig{MaxSteps: 6000},
		Grid:  GridConfig{Width: 80, Height: 24},
	},
	"long_thin": {
		Radius: 0.01, Length: 0.5, Turns: 500, Current: 2.0,
		Trace: TraceConfig{MaxSteps: 4000},
		Grid:  GridConfig{Width: 80, Height: 24},
	},
	"short_fat": {
		Radius: 0.08, Length: 0.1, Turns: 50, Current: 8.0,
		Trace: TraceConfig{MaxSteps: 6000},
		Grid:  GridConfig{Width: 80, Height: 24},
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
