package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	URL         string `toml:"url"`
	Token       string `toml:"token"`
	BatchTime   string `toml:"batch_time"`
	BatchCount  int    `toml:"batch_count"`
	SizeLimit   int    `toml:"size_limit"`
	HTTPTimeout string `toml:"http_timeout"`
	Follow      string `toml:"follow"`
	FromStart   *bool  `toml:"from_start"`
	Verbose     *bool  `toml:"verbose"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.obship/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".obship", "config.toml")
	}
	return ""
}

// FileExists reports whether the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", fc.URL, &cfg.URL)
	s.setString("token", fc.Token, &cfg.Token)
	s.setString("follow", fc.Follow, &cfg.Follow)

	if err := s.setDuration("batch-time", fc.BatchTime, &cfg.BatchTime); err != nil {
		return err
	}
	if err := s.setDuration("timeout", fc.HTTPTimeout, &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setInt("batch-count", fc.BatchCount, &cfg.BatchCount)
	s.setInt("size-limit", fc.SizeLimit, &cfg.SizeLimit)

	s.setBool("from-start", fc.FromStart, &cfg.FromStart)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}
