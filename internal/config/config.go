// Package config loads an optional YAML defaults file for the CLI
// runner, following the "~/.config/<tool>/config.yaml" convention: this
// engine only has a couple of CLI-wide defaults worth persisting
// (whether to run verbose by default, and a default batch output path).
package config

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config holds CLI defaults that a flag can still override.
type Config struct {
	Verbose    bool   `yaml:"verbose"`
	OutputFile string `yaml:"outputFile"`
}

// DefaultPath returns $HOME/.config/rexnfa/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "rexnfa", "config.yaml"), nil
}

// Load reads and parses the config file at path. A missing file is not
// an error — it returns a zero Config, so the CLI runner falls back to
// its built-in defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
