// Package config loads the YAML configuration of the topogen CLI.
//
// Missing fields take defaults:
//
//	sweep:     {qmax: 32, tests: 20, seed: 1, workers: 4}
//	store:     {path: topogen.db}
//	output:    {dir: ""}        # no adjacency files
//	log:       {level: info}
//	extension: {strict: false, invariant_checks: false}
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topogen/brownext"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("config: invalid value")

// Config is the CLI configuration.
type Config struct {
	Sweep     SweepConfig     `yaml:"sweep"`
	Store     StoreConfig     `yaml:"store"`
	Output    OutputConfig    `yaml:"output"`
	Log       LogConfig       `yaml:"log"`
	Extension ExtensionConfig `yaml:"extension"`
}

// SweepConfig drives random parameter sweeps.
type SweepConfig struct {
	QMax    int   `yaml:"qmax"`
	Tests   int   `yaml:"tests"`
	Seed    int64 `yaml:"seed"` // 0 means the default seed
	Workers int   `yaml:"workers"`
}

// StoreConfig locates the results database.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig locates adjacency files; an empty Dir disables them.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ExtensionConfig maps to brownext options.
type ExtensionConfig struct {
	Strict          bool `yaml:"strict"`
	InvariantChecks bool `yaml:"invariant_checks"`
}

const (
	defaultQMax    = 32
	defaultTests   = 20
	defaultSeed    = 1
	defaultWorkers = 4
	defaultDBPath  = "topogen.db"
	defaultLevel   = "info"
)

// Default returns the configuration used without a file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads path, or returns Default when path is empty.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML and applies defaults. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Sweep.QMax == 0 {
		c.Sweep.QMax = defaultQMax
	}
	if c.Sweep.Tests == 0 {
		c.Sweep.Tests = defaultTests
	}
	if c.Sweep.Seed == 0 {
		c.Sweep.Seed = defaultSeed
	}
	if c.Sweep.Workers == 0 {
		c.Sweep.Workers = defaultWorkers
	}
	if c.Store.Path == "" {
		c.Store.Path = defaultDBPath
	}
	if c.Log.Level == "" {
		c.Log.Level = defaultLevel
	}
}

// Validate rejects values the CLI cannot run with.
func (c *Config) Validate() error {
	if c.Sweep.QMax < 2 {
		return fmt.Errorf("sweep.qmax=%d < 2: %w", c.Sweep.QMax, ErrInvalid)
	}
	if c.Sweep.Tests < 1 {
		return fmt.Errorf("sweep.tests=%d < 1: %w", c.Sweep.Tests, ErrInvalid)
	}
	if c.Sweep.Workers < 1 {
		return fmt.Errorf("sweep.workers=%d < 1: %w", c.Sweep.Workers, ErrInvalid)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", c.Log.Level, ErrInvalid)
	}

	return lvl, nil
}

// GeneratorOptions converts the extension section to brownext options.
func (c *Config) GeneratorOptions() []brownext.Option {
	var opts []brownext.Option
	if c.Extension.Strict {
		opts = append(opts, brownext.WithStrictRounds())
	}
	if c.Extension.InvariantChecks {
		opts = append(opts, brownext.WithInvariantChecks())
	}

	return opts
}
