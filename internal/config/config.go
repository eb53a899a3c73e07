package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/chunkstore/pkg/gen"
)

// ErrUnknownLogLevel is returned by Validate for an unparsable log level.
var ErrUnknownLogLevel = errors.New("unknown log level")

// Config holds the chunkgen tool configuration.
type Config struct {
	Seed      int64  `yaml:"seed"`
	Generator string `yaml:"generator"` // "flat" or "noise"
	ChunkX    int64  `yaml:"chunk_x"`
	ChunkZ    int64  `yaml:"chunk_z"`
	Preset    string `yaml:"preset"`  // path to a flat layer preset; empty = classic superflat
	Checked   bool   `yaml:"checked"` // verify columns through the validating accessors
	LogLevel  string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Generator: gen.NameNoise,
		LogLevel:  "info",
	}
}

// Load reads a YAML config file into cfg. If the file does not exist, cfg is unchanged.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["generator"] {
		cfg.Generator = fromFile.Generator
	}
	if !explicitFlags["x"] {
		cfg.ChunkX = fromFile.ChunkX
	}
	if !explicitFlags["z"] {
		cfg.ChunkZ = fromFile.ChunkZ
	}
	if !explicitFlags["preset"] {
		cfg.Preset = fromFile.Preset
	}
	if !explicitFlags["checked"] {
		cfg.Checked = fromFile.Checked
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}
}

// Validate rejects unknown generator names and log levels.
func (c *Config) Validate() error {
	switch c.Generator {
	case gen.NameFlat, gen.NameNoise:
	default:
		return fmt.Errorf("generator %q: %w", c.Generator, gen.ErrUnknownGenerator)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, ErrUnknownLogLevel)
	}
	return l, nil
}

// LoadPreset returns the flat layer preset named by Preset, or the classic
// superflat preset when none is set.
func (c *Config) LoadPreset() (gen.Preset, error) {
	if c.Preset == "" {
		return gen.DefaultPreset(), nil
	}
	return gen.LoadPreset(c.Preset)
}
