package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds the process settings for the options tool
type Config struct {
	// Path of the JSON or YAML document holding the SeattleWaste section
	ConfigFile string `env:"SEATTLEWASTE_CONFIG" envDefault:"appsettings.json"`

	// Hot reload configuration
	WatchDebounce time.Duration `env:"WATCH_DEBOUNCE" envDefault:"250ms"`

	// Logging configuration
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogEncoding string `env:"LOG_ENCODING" envDefault:"json"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.ConfigFile == "" {
		return fmt.Errorf("SEATTLEWASTE_CONFIG is required")
	}

	if c.WatchDebounce < 0 {
		return fmt.Errorf("WATCH_DEBOUNCE must be non-negative")
	}

	if !isValidLogLevel(c.LogLevel) {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error")
	}

	if c.LogEncoding != "json" && c.LogEncoding != "console" {
		return fmt.Errorf("LOG_ENCODING must be one of: json, console")
	}

	return nil
}

// isValidLogLevel checks if the log level is valid
func isValidLogLevel(level string) bool {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	return validLevels[level]
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{ConfigFile=%s, WatchDebounce=%s, LogLevel=%s, LogEncoding=%s}",
		c.ConfigFile,
		c.WatchDebounce,
		c.LogLevel,
		c.LogEncoding,
	)
}
