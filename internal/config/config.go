package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the pipeline run parameters. Seed, Window, and Version are
// pointers so a key that is absent from the YAML can be told apart from one
// set to a zero value during validation.
type Config struct {
	Seed     *int64  `yaml:"seed"`
	Window   *int    `yaml:"window"`
	Version  *string `yaml:"version"`
	LogLevel string  `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("PIPELINE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Seed = &n
		}
	}
	if v := os.Getenv("PIPELINE_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Window = &n
		}
	}
	if v := os.Getenv("PIPELINE_VERSION"); v != "" {
		cfg.Version = &v
	}
	if v := os.Getenv("PIPELINE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	// Defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and in range.
func (c *Config) Validate() error {
	if c.Seed == nil {
		return fmt.Errorf("missing required config field: 'seed'")
	}
	if c.Window == nil {
		return fmt.Errorf("missing required config field: 'window'")
	}
	if c.Version == nil {
		return fmt.Errorf("missing required config field: 'version'")
	}
	if *c.Version == "" {
		return fmt.Errorf("config field 'version' must be non-empty")
	}
	if *c.Window < 1 {
		return fmt.Errorf("config field 'window' must be >= 1, got %d", *c.Window)
	}
	return nil
}
