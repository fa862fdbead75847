// Package config loads dogear configuration from defaults, an optional
// config file, and DOGEAR_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the dogear configuration.
type Config struct {
	LogLevel  string            `mapstructure:"log_level" yaml:"log_level"`   // debug, info, warn, error
	LogFormat string            `mapstructure:"log_format" yaml:"log_format"` // text or json
	Producer  string            `mapstructure:"producer" yaml:"producer"`     // INFO PRODUCER for exported XML
	PDF       PDFConfig         `mapstructure:"pdf" yaml:"pdf"`
	Defaults  map[string]string `mapstructure:"defaults" yaml:"defaults"` // ITEM attribute overrides
}

// PDFConfig controls how PDFs are opened and written.
type PDFConfig struct {
	Validation string `mapstructure:"validation" yaml:"validation"` // relaxed, strict, or none
}

// DefaultConfig returns the builtin configuration values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Producer:  "dogear",
		PDF:       PDFConfig{Validation: "relaxed"},
		Defaults:  map[string]string{},
	}
}

// Load reads configuration from cfgFile, or from config.yaml in the
// working directory or ~/.dogear when cfgFile is empty. A missing
// config file is not an error; a missing explicit cfgFile is.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_format", defaults.LogFormat)
	v.SetDefault("producer", defaults.Producer)
	v.SetDefault("pdf.validation", defaults.PDF.Validation)
	v.SetDefault("defaults", defaults.Defaults)

	// Environment variables with DOGEAR_ prefix
	v.SetEnvPrefix("DOGEAR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.dogear")
	}

	// Try to read config file (not required when searching)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
