// Package config loads nrrdinfo settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dchen116/nrrd/internal/geometry"
)

// Config is the nrrdinfo configuration file.
type Config struct {
	Decode struct {
		// Workers is how many slabs are read at once.
		Workers int `yaml:"workers"`

		// TempDir receives inflated gzip/bzip2 slabs.
		TempDir string `yaml:"tempDir"`

		// MaxBytes caps the sample buffer; 0 disables the cap.
		MaxBytes int64 `yaml:"maxBytes"`
	} `yaml:"decode"`

	Geometry struct {
		// Origin overrides the header's origin when set.
		Origin []float64 `yaml:"origin"`

		// Orientations, one per spatial axis (R2L, L2R, A2P, P2A, I2S, S2I).
		// Empty means derive from the header's space field.
		Orientations []string `yaml:"orientations"`
	} `yaml:"geometry"`

	Log struct {
		Format string `yaml:"format"`
		Level  string `yaml:"level"`
	} `yaml:"log"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Decode.Workers = 1
	cfg.Log.Format = "console"
	cfg.Log.Level = "info"
	return cfg
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-specified config
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values yaml cannot.
func (c *Config) Validate() error {
	if c.Decode.Workers < 0 {
		return fmt.Errorf("decode.workers must not be negative, got %d", c.Decode.Workers)
	}
	if c.Decode.MaxBytes < 0 {
		return fmt.Errorf("decode.maxBytes must not be negative, got %d", c.Decode.MaxBytes)
	}
	if _, err := c.ParsedOrientations(); err != nil {
		return err
	}
	return nil
}

// ParsedOrientations converts Geometry.Orientations.
func (c *Config) ParsedOrientations() ([]geometry.Orientation, error) {
	out := make([]geometry.Orientation, 0, len(c.Geometry.Orientations))
	for _, s := range c.Geometry.Orientations {
		o, err := geometry.ParseOrientation(s)
		if err != nil {
			return nil, fmt.Errorf("geometry.orientations: %w", err)
		}
		out = append(out, o)
	}
	return out, nil
}
