package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// LoadFrom loads configuration from file, environment, and defaults through
// the given viper instance, which carries any bound CLI flags.
// A config file set explicitly with SetConfigFile must exist; otherwise
// config.yaml is looked up in the working directory and ConfigDir and
// skipped when absent.
func LoadFrom(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	// SetConfigName would discard a file set with SetConfigFile
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath(ConfigDir())
	}
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// Environment variables (REPORTMANIFEST_*)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("project.root", "")

	v.SetDefault("reports.dir", DefaultReportsDir)
	v.SetDefault("reports.mode", DefaultMode)
	v.SetDefault("reports.exclude", []string{})
	v.SetDefault("reports.titles", DefaultTitles)

	v.SetDefault("output.file", DefaultOutputFile)
	v.SetDefault("output.gzip", DefaultGzip)
	v.SetDefault("output.progress", DefaultProgress)
	v.SetDefault("output.dry_run", false)

	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}
