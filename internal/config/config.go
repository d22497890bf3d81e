package config

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	DefaultWorkers   = 4
	DefaultBlockSize = 2

	// MaxWorkers bounds the worker count. Every strategy allocates one load
	// slot per worker, so a huge count would exhaust memory before any
	// report is written.
	MaxWorkers = 1 << 20
)

// ErrInvalidConfig is wrapped by every configuration error.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the top-level configuration for workmap.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation" mapstructure:"simulation"`
	Input      InputConfig      `yaml:"input" mapstructure:"input"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
}

type SimulationConfig struct {
	Workers    int      `yaml:"workers" mapstructure:"workers"`
	BlockSize  int      `yaml:"block_size" mapstructure:"block_size"`
	Strategies []string `yaml:"strategies" mapstructure:"strategies"` // empty = all
}

type InputConfig struct {
	Path     string `yaml:"path" mapstructure:"path"`           // empty = stdin
	MaxUnits int    `yaml:"max_units" mapstructure:"max_units"` // 0 = unlimited buffer growth
}

type OutputConfig struct {
	Format      string `yaml:"format" mapstructure:"format"`
	MetricsFile string `yaml:"metrics_file" mapstructure:"metrics_file"`
	PlotFile    string `yaml:"plot_file" mapstructure:"plot_file"`
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Simulation: SimulationConfig{
			Workers:   DefaultWorkers,
			BlockSize: DefaultBlockSize,
		},
		Output: OutputConfig{
			Format: "table",
		},
	}
}

// Validate checks the config for consistency.
func (c *Config) Validate() error {
	if c.Simulation.Workers <= 0 {
		return fmt.Errorf("%w: invalid worker count %d", ErrInvalidConfig, c.Simulation.Workers)
	}
	if c.Simulation.Workers > MaxWorkers {
		return fmt.Errorf("%w: invalid worker count %d exceeds limit %d", ErrInvalidConfig, c.Simulation.Workers, MaxWorkers)
	}
	if c.Simulation.BlockSize <= 0 {
		return fmt.Errorf("%w: invalid block size %d", ErrInvalidConfig, c.Simulation.BlockSize)
	}
	if c.Input.MaxUnits < 0 {
		return fmt.Errorf("%w: max_units must be non-negative, got %d", ErrInvalidConfig, c.Input.MaxUnits)
	}
	validFormats := map[string]bool{"table": true, "json": true, "markdown": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("%w: output format must be table, json, or markdown, got %q", ErrInvalidConfig, c.Output.Format)
	}
	return nil
}

// ApplyArgs overrides worker count and block size from positional
// arguments. Both must be given together or not at all.
func (c *Config) ApplyArgs(args []string) error {
	switch len(args) {
	case 0:
		return nil
	case 2:
	default:
		return fmt.Errorf("%w: expected worker count and block size together, got %d argument(s)", ErrInvalidConfig, len(args))
	}

	workers, err := parsePositive(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid worker count %q", ErrInvalidConfig, args[0])
	}
	blockSize, err := parsePositive(args[1])
	if err != nil {
		return fmt.Errorf("%w: invalid block size %q", ErrInvalidConfig, args[1])
	}

	c.Simulation.Workers = workers
	c.Simulation.BlockSize = blockSize
	return nil
}

func parsePositive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("%d is not positive", n)
	}
	return n, nil
}
