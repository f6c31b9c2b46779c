package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (OBSHIP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("url", os.Getenv("OBSHIP_URL"), &cfg.URL)
	s.setString("token", os.Getenv("OBSHIP_TOKEN"), &cfg.Token)
	s.setString("follow", os.Getenv("OBSHIP_FOLLOW"), &cfg.Follow)

	if err := s.setDuration("batch-time", os.Getenv("OBSHIP_BATCH_TIME"), &cfg.BatchTime); err != nil {
		return err
	}
	if err := s.setDuration("timeout", os.Getenv("OBSHIP_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	if err := s.setIntFromString("batch-count", os.Getenv("OBSHIP_BATCH_COUNT"), &cfg.BatchCount); err != nil {
		return err
	}
	if err := s.setIntFromString("size-limit", os.Getenv("OBSHIP_SIZE_LIMIT"), &cfg.SizeLimit); err != nil {
		return err
	}

	s.setBoolFromString("from-start", os.Getenv("OBSHIP_FROM_START"), &cfg.FromStart)
	s.setBoolFromString("verbose", os.Getenv("OBSHIP_VERBOSE"), &cfg.Verbose)

	return nil
}
