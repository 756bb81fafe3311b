// Package config loads the supercollider tooling configuration from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration.
type Config struct {
	// Sclang configures the interpreter process.
	Sclang SclangConfig `yaml:"sclang"`

	// Log configures server-side logging.
	Log LogConfig `yaml:"log"`
}

// SclangConfig configures how the sclang interpreter is launched.
type SclangConfig struct {
	Command string `yaml:"command"` // executable path, default "sclang"
}

// LogConfig configures logging verbosity for the language server.
type LogConfig struct {
	Verbosity int `yaml:"verbosity"` // commonlog verbosity, 0 = default
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Sclang: SclangConfig{Command: "sclang"},
	}
}

// Load reads and parses a YAML config file. A missing file is not an error:
// the built-in defaults are returned so the tooling works unconfigured.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML config data and applies defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.Sclang.Command == "" {
		cfg.Sclang.Command = "sclang"
	}
	if cfg.Log.Verbosity < 0 {
		return nil, fmt.Errorf("log.verbosity must not be negative, got %d", cfg.Log.Verbosity)
	}
	return &cfg, nil
}
