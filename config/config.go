// Package config overlays an optional TOML file and environment
// overrides onto the compiled parameter defaults
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// EnvPerformanceMode forces the low capability grade for the session
// when set to 1
const EnvPerformanceMode = "GALAXY_PERFORMANCE_MODE"

// Load reads configuration from path; an empty path loads pure defaults.
// The result is validated
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg.ApplyDefaults()
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if os.Getenv(EnvPerformanceMode) == "1" {
		cfg.PerformanceMode = true
	}
}
