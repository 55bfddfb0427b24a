// Package config defines the wavemod application configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the top-level wavemod configuration.
type Config struct {
	StorageRoot string        `json:"storage_root" yaml:"storage_root"` // root for files/temp/downloads areas
	DataDir     string        `json:"data_dir" yaml:"data_dir"`
	LogLevel    string        `json:"log_level" yaml:"log_level"`
	History     HistoryConfig `json:"history" yaml:"history"`
}

// HistoryConfig controls the invocation history store.
type HistoryConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path,omitempty" yaml:"path"` // defaults to <data_dir>/history.db
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		StorageRoot: "./storage",
		DataDir:     "./data",
		LogLevel:    "info",
		History: HistoryConfig{
			Enabled: true,
		},
	}
}

// Load reads a YAML config file and returns the parsed configuration.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// HistoryPath returns the effective history database path.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return c.DataDir + "/history.db"
}
