package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// The YAML file path comes from RUWORDNET_CONFIG; without it, a
// ./config.yaml next to the binary is picked up when present. The CLI
// works out of the box with no file at all: defaults point at ./data.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("RUWORDNET_CONFIG")
	switch {
	case path != "":
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case fileExists("./config.yaml"):
		if err := cleanenv.ReadConfig("./config.yaml", &cfg); err != nil {
			return nil, fmt.Errorf("config: read ./config.yaml: %w", err)
		}
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
