package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOutput is returned for an unknown output format.
var ErrInvalidOutput = errors.New("output must be text or yaml")

// Load loads configuration with priority: defaults < file < flags.
func Load(flags *Flags) (*Config, error) {
	cfg := Default()

	configPath := ""
	if flags != nil {
		configPath = flags.Config
	}
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	flags.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that yaml or flags cannot constrain.
func (c *Config) Validate() error {
	switch c.Format.Output {
	case "text", "yaml":
	default:
		return fmt.Errorf("%q: %w", c.Format.Output, ErrInvalidOutput)
	}
	if c.Format.Precision < 0 || c.Format.Precision > 17 {
		return fmt.Errorf("precision %d out of range [0, 17]", c.Format.Precision)
	}
	return nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./quattool.yaml",
		DefaultPath(),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// DefaultPath returns the user config file that Save writes and Load reads.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Orient")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Orient")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "orient")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "orient")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
