// SPDX-License-Identifier: MIT

// Package config loads solver profiles for the rootfind CLI from YAML or
// TOML files and turns them into newton options and scan ranges.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rootfind/newton"
)

// EnvPath names the environment variable consulted by LoadFromEnv.
const EnvPath = "ROOTFIND_CONFIG"

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Format is the configuration file format.
type Format int

const (
	// FormatTOML is the default when the extension is not recognised.
	FormatTOML Format = iota

	// FormatYAML covers .yaml and .yml files.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config is a complete solver profile.
type Config struct {
	Solver   Solver `yaml:"solver" toml:"solver"`
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// Solver mirrors the newton options. Keys missing from a profile take the
// newton defaults; MaxSeeds 0 means unlimited.
type Solver struct {
	Tolerance      float64 `yaml:"tolerance" toml:"tolerance"`
	MaxIterations  int     `yaml:"max_iterations" toml:"max_iterations"`
	Acceptance     float64 `yaml:"acceptance" toml:"acceptance"`
	DerivativeStep float64 `yaml:"derivative_step" toml:"derivative_step"`
	MaxSeeds       int     `yaml:"max_seeds" toml:"max_seeds"`
	Ranges         []Range `yaml:"ranges" toml:"ranges"`
}

// Range is one (min, max, step) scan interval.
type Range struct {
	Min  float64 `yaml:"min" toml:"min"`
	Max  float64 `yaml:"max" toml:"max"`
	Step float64 `yaml:"step" toml:"step"`
}

// Default returns the profile equivalent to newton.DefaultOptions.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

// Load reads and validates the profile at path. Environment variables in
// path are expanded; the format follows the file extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data, DetectFormat(path))
}

// LoadFromEnv loads the profile named by $ROOTFIND_CONFIG, or returns
// Default when the variable is unset.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Parse decodes data over Default in the given format and validates the
// result. Keys absent from data keep their default; keys present keep the
// decoded value, so an explicit zero tolerance fails Validate.
func Parse(data []byte, format Format) (*Config, error) {
	c := Default()

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: TOML parse error: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: YAML parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("config: unsupported format %s", format)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// DetectFormat maps a file extension to a Format, TOML by default.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// applyDefaults fills zero fields with the newton defaults.
func (c *Config) applyDefaults() {
	if c.Solver.Tolerance == 0 {
		c.Solver.Tolerance = newton.MaxError
	}
	if c.Solver.MaxIterations == 0 {
		c.Solver.MaxIterations = newton.MaxIterations
	}
	if c.Solver.Acceptance == 0 {
		c.Solver.Acceptance = newton.AcceptThreshold
	}
	if c.Solver.DerivativeStep == 0 {
		c.Solver.DerivativeStep = newton.MaxError
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first invalid field, wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	s := c.Solver
	switch {
	case !positiveFinite(s.Tolerance):
		return fmt.Errorf("%w: solver.tolerance must be finite and > 0 (%g)", ErrInvalidConfig, s.Tolerance)
	case s.MaxIterations < 1:
		return fmt.Errorf("%w: solver.max_iterations must be >= 1 (%d)", ErrInvalidConfig, s.MaxIterations)
	case !positiveFinite(s.Acceptance):
		return fmt.Errorf("%w: solver.acceptance must be finite and > 0 (%g)", ErrInvalidConfig, s.Acceptance)
	case !positiveFinite(s.DerivativeStep):
		return fmt.Errorf("%w: solver.derivative_step must be finite and > 0 (%g)", ErrInvalidConfig, s.DerivativeStep)
	case s.MaxSeeds < 0:
		return fmt.Errorf("%w: solver.max_seeds cannot be negative (%d)", ErrInvalidConfig, s.MaxSeeds)
	}
	for i, r := range c.NewtonRanges() {
		if !r.Valid() {
			return fmt.Errorf("%w: solver.ranges[%d] %v: %w", ErrInvalidConfig, i, r, newton.ErrInvalidRange)
		}
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error", case-insensitive).
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(c.LogLevel))

	return l, err
}

// Options converts the solver section to newton options.
func (c *Config) Options(extra ...newton.Option) []newton.Option {
	s := c.Solver
	opts := []newton.Option{
		newton.WithTolerance(s.Tolerance),
		newton.WithMaxIterations(s.MaxIterations),
		newton.WithAcceptance(s.Acceptance),
		newton.WithDerivativeStep(s.DerivativeStep),
		newton.WithMaxSeeds(s.MaxSeeds),
	}

	return append(opts, extra...)
}

// NewtonRanges converts the configured ranges; nil when none are set so that
// callers fall back to their own defaults.
func (c *Config) NewtonRanges() []newton.Range {
	if len(c.Solver.Ranges) == 0 {
		return nil
	}
	out := make([]newton.Range, len(c.Solver.Ranges))
	for i, r := range c.Solver.Ranges {
		out[i] = newton.Range{Min: r.Min, Max: r.Max, Step: r.Step}
	}

	return out
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
