package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLength    = 50
	DefaultDt        = 0.1
	DefaultFinalTime = 1.0
	DefaultScheme    = "inplace"
	DefaultH         = 0.01
)

type Config struct {
	Model     string  `yaml:"model"`
	Scheme    string  `yaml:"scheme"`
	Length    int     `yaml:"length"`
	Dt        float64 `yaml:"dt"`
	FinalTime float64 `yaml:"final_time"`
	H         float64 `yaml:"h"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:     "diffusion",
		Scheme:    DefaultScheme,
		Length:    DefaultLength,
		Dt:        DefaultDt,
		FinalTime: DefaultFinalTime,
		H:         DefaultH,
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

// Validate rejects configurations the solvers would refuse anyway, so the
// CLI can report the problem before a run directory is created.
func (c *Config) Validate() error {
	switch c.Model {
	case "diffusion":
		if c.Length <= 0 {
			return fmt.Errorf("config: length must be positive, got %d", c.Length)
		}
		if c.Dt <= 0 {
			return fmt.Errorf("config: dt must be positive, got %f", c.Dt)
		}
		if c.FinalTime <= 0 {
			return fmt.Errorf("config: final_time must be positive, got %f", c.FinalTime)
		}
		if c.Scheme != "inplace" && c.Scheme != "buffered" {
			return fmt.Errorf("config: unknown scheme %q", c.Scheme)
		}
	case "euler":
		if c.H <= 0 {
			return fmt.Errorf("config: h must be positive, got %f", c.H)
		}
	default:
		return fmt.Errorf("config: unknown model %q", c.Model)
	}
	return nil
}
