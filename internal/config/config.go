package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/hopsim/internal/hopfield"
)

const (
	DefaultDimension  = 64
	DefaultDomain     = "bipolar"
	DefaultStates     = 10
	DefaultWorkers    = 4
	DefaultIterations = 100
	DefaultLowerBound = -1.0
	DefaultUpperBound = 1.0
)

// Config describes one relaxation run: the network, the generator, and the
// batch parameters. It is the yaml document the CLI loads and saves.
type Config struct {
	Dimension         int     `yaml:"dimension"`
	Domain            string  `yaml:"domain"`
	States            int     `yaml:"states"`
	Workers           int     `yaml:"workers"`
	Seed              int64   `yaml:"seed"`
	RandomWeights     bool    `yaml:"random_weights"`
	ForceSymmetric    bool    `yaml:"force_symmetric"`
	ForceZeroDiagonal bool    `yaml:"force_zero_diagonal"`
	MaxIterations     int     `yaml:"max_iterations"`
	MaxUnstableUnits  int     `yaml:"max_unstable_units"`
	LowerBound        float64 `yaml:"lower_bound"`
	UpperBound        float64 `yaml:"upper_bound"`
	GeneratorSeed     int64   `yaml:"generator_seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Dimension:         DefaultDimension,
		Domain:            DefaultDomain,
		States:            DefaultStates,
		Workers:           DefaultWorkers,
		RandomWeights:     true,
		ForceSymmetric:    true,
		ForceZeroDiagonal: true,
		MaxIterations:     DefaultIterations,
		MaxUnstableUnits:  0,
		LowerBound:        DefaultLowerBound,
		UpperBound:        DefaultUpperBound,
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

// Validate checks the run-level parameters the engine constructors do not
// see themselves.
func (c *Config) Validate() error {
	if c.States < 0 {
		return fmt.Errorf("states must be non-negative, got %d", c.States)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := hopfield.ParseDomain(c.Domain); err != nil {
		return err
	}
	return nil
}

// NetworkConfig translates the run config into engine construction
// parameters.
func (c *Config) NetworkConfig() (hopfield.Config, error) {
	domain, err := hopfield.ParseDomain(c.Domain)
	if err != nil {
		return hopfield.Config{}, err
	}
	return hopfield.Config{
		Dimension:         c.Dimension,
		Domain:            domain,
		RandomWeights:     c.RandomWeights,
		ForceSymmetric:    c.ForceSymmetric,
		ForceZeroDiagonal: c.ForceZeroDiagonal,
		MaxIterations:     c.MaxIterations,
		MaxUnstableUnits:  c.MaxUnstableUnits,
		Seed:              c.Seed,
	}, nil
}

// GeneratorConfig translates the run config into generator construction
// parameters.
func (c *Config) GeneratorConfig() (hopfield.GeneratorConfig, error) {
	domain, err := hopfield.ParseDomain(c.Domain)
	if err != nil {
		return hopfield.GeneratorConfig{}, err
	}
	return hopfield.GeneratorConfig{
		Dimension:  c.Dimension,
		Domain:     domain,
		LowerBound: c.LowerBound,
		UpperBound: c.UpperBound,
		Seed:       c.GeneratorSeed,
	}, nil
}
