package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no --config flag is given.
const DefaultPath = "config.yaml"

// Load reads a yaml config file and applies defaults. An empty path falls
// back to DefaultPath when that file exists, otherwise to pure defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		if _, err := os.Stat(DefaultPath); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Default()
			}
			return nil, fmt.Errorf("stat config: %w", err)
		}
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a config built entirely from defaults.
func Default() (*Config, error) {
	cfg := &Config{}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
