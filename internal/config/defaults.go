package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Reports defaults
	DefaultReportsDir = "report"
	DefaultMode       = "nested"
	DefaultTitles     = false

	// Output defaults
	DefaultOutputFile = "manifest.json"
	DefaultGzip       = false
	DefaultProgress   = false

	// Logging defaults
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "pretty"

	// EnvPrefix prefixes every environment override (REPORTMANIFEST_REPORTS_MODE, ...)
	EnvPrefix = "REPORTMANIFEST"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".reportmanifest"
	}
	return filepath.Join(home, ".reportmanifest")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Reports: ReportsConfig{
			Dir:     DefaultReportsDir,
			Mode:    DefaultMode,
			Exclude: []string{},
			Titles:  DefaultTitles,
		},
		Output: OutputConfig{
			File:     DefaultOutputFile,
			Gzip:     DefaultGzip,
			Progress: DefaultProgress,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
