package config

import (
	"fmt"
	"slices"
	"strings"
)

// Config is the root application configuration.
type Config struct {
	Data DataConfig `yaml:"data"`
	Log  LogConfig  `yaml:"log"`
}

// DataConfig locates the RuWordNet distribution files.
type DataConfig struct {
	// Dir is the directory holding senses.{N,V,A}.xml,
	// synsets.{N,V,A}.xml and synset_relations.{N,V,A}.xml.
	Dir string `yaml:"dir" env:"RUWORDNET_DATA_DIR" env-default:"./data"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// Validate checks the configuration for values that would only fail
// later, at load or logging time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data.Dir) == "" {
		return fmt.Errorf("data.dir must not be empty")
	}

	levels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(levels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level %q: must be one of %s", c.Log.Level, strings.Join(levels, ", "))
	}

	formats := []string{"text", "json"}
	if !slices.Contains(formats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format %q: must be one of %s", c.Log.Format, strings.Join(formats, ", "))
	}

	return nil
}
