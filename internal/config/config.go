// Package config handles quattool configuration loading and management.
package config

import "github.com/Faultbox/orient/pkg/math"

// Config holds all tool settings.
type Config struct {
	Logging     LoggingConfig     `yaml:"logging"`
	Format      FormatConfig      `yaml:"format"`
	Cache       CacheConfig       `yaml:"cache"`
	Orientation OrientationConfig `yaml:"orientation"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// FormatConfig controls how numbers are printed.
type FormatConfig struct {
	Precision int    `yaml:"precision"`
	Output    string `yaml:"output"` // text or yaml
}

// CacheConfig controls the shared quaternion factories.
type CacheConfig struct {
	Enabled bool `yaml:"enabled"`
}

// OrientationConfig holds defaults for device orientation input.
type OrientationConfig struct {
	Screen float64 `yaml:"screen"` // screen orientation twist in degrees
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Format: FormatConfig{
			Precision: math.DefaultPrecision,
			Output:    "text",
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		Orientation: OrientationConfig{
			Screen: 0,
		},
	}
}
