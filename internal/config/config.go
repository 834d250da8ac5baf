package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultMass    = 1.0
	DefaultExtent  = 500.0
	DefaultNX      = 41
	DefaultNY      = 41
	DefaultHeight  = 0.0
	DefaultSamples = 101
)

type Config struct {
	Source   SourceConfig  `yaml:"source"`
	Grid     GridConfig    `yaml:"grid"`
	Profile  ProfileConfig `yaml:"profile"`
	Quantity string        `yaml:"quantity"`
}

type SourceConfig struct {
	Mass     float64   `yaml:"mass"`
	Location []float64 `yaml:"location"`
}

type GridConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
	Z    float64 `yaml:"z"`
	NX   int     `yaml:"nx"`
	NY   int     `yaml:"ny"`
}

type ProfileConfig struct {
	Start []float64 `yaml:"start"`
	End   []float64 `yaml:"end"`
	N     int       `yaml:"n"`
}

func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Mass:     DefaultMass,
			Location: []float64{0, 0, 0},
		},
		Grid: GridConfig{
			XMin: -DefaultExtent, XMax: DefaultExtent,
			YMin: -DefaultExtent, YMax: DefaultExtent,
			Z:  DefaultHeight,
			NX: DefaultNX, NY: DefaultNY,
		},
		Profile: ProfileConfig{
			Start: []float64{-DefaultExtent, 0, 0},
			End:   []float64{DefaultExtent, 0, 0},
			N:     DefaultSamples,
		},
		Quantity: "gz",
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
