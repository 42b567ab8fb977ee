package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/coilsim/internal/coil"
)

const (
	DefaultRadius  = 0.02
	DefaultLength  = 0.2
	DefaultTurns   = 200
	DefaultCurrent = 5.0
)

type Config struct {
	Radius  float64     `yaml:"radius"`
	Length  float64     `yaml:"length"`
	Turns   int         `yaml:"turns"`
	Current float64     `yaml:"current"`
	Trace   TraceConfig `yaml:"trace"`
	Grid    GridConfig  `yaml:"grid"`
}

type TraceConfig struct {
	MaxSteps int `yaml:"max_steps"`
}

type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		Radius:  DefaultRadius,
		Length:  DefaultLength,
		Turns:   DefaultTurns,
		Current: DefaultCurrent,
		Trace:   TraceConfig{MaxSteps: 4000},
		Grid:    GridConfig{Width: 80, Height: 24},
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

// Geometry builds the coil description the solver consumes. Validation
// happens at this boundary, not inside the solver.
func (c *Config) Geometry() (coil.Geometry, error) {
	g := coil.Geometry{
		Radius:  c.Radius,
		Length:  c.Length,
		Turns:   c.Turns,
		Current: c.Current,
	}
	return g, g.Validate()
}
