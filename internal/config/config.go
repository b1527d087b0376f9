package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Config holds the configuration of the schemakv tool.
type Config struct {
	// Path of the database directory.
	Path string `yaml:"path"`
	// Sync makes every write durable before returning.
	Sync bool `yaml:"sync"`
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogJSON switches from console to JSON log output.
	LogJSON bool `yaml:"log_json"`
}

func Default() Config {
	return Config{
		Path:     "schemakv-data",
		LogLevel: "info",
	}
}

// Load reads the configuration from a YAML file. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
