// Package cliconfig holds the configuration surface of the obship CLI:
// defaults, TOML file loading, environment variables, and flag precedence.
// Precedence is flags > environment > file > defaults, tracked through the
// changed-flags map built from pflag.
package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config holds CLI configuration for obship.
type Config struct {
	URL   string
	Token string

	BatchTime   time.Duration
	BatchCount  int
	SizeLimit   int
	HTTPTimeout time.Duration

	// Follow is a file path to tail instead of reading stdin.
	Follow string

	// FromStart ships the followed file from its beginning rather than
	// only lines appended after startup.
	FromStart bool

	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		BatchTime:   5 * time.Second,
		BatchCount:  200,
		SizeLimit:   2_000_000,
		HTTPTimeout: 30 * time.Second,
		Token:       os.Getenv("OBSHIP_TOKEN"),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("url is required")
	}
	if c.Token == "" {
		return fmt.Errorf("token is required (flag, OBSHIP_TOKEN, or config file)")
	}
	if c.BatchTime <= 0 {
		return fmt.Errorf("batch time must be positive")
	}
	if c.BatchCount <= 0 {
		return fmt.Errorf("batch count must be positive")
	}
	if c.SizeLimit <= 0 {
		return fmt.Errorf("size limit must be positive")
	}
	return nil
}

var logger zerolog.Logger

func init() {
	logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

// Logger returns the CLI's zerolog logger.
func Logger() zerolog.Logger {
	return logger
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
