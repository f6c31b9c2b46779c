package cliconfig

import (
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing url", func(c *Config) { c.URL = "" }, true},
		{"missing token", func(c *Config) { c.Token = "" }, true},
		{"zero batch time", func(c *Config) { c.BatchTime = 0 }, true},
		{"zero batch count", func(c *Config) { c.BatchCount = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.URL = "https://collect.example.com/v1/http"
			cfg.Token = "secret"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Errorf("Validate() = nil, want error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestApplyEnvConfig(t *testing.T) {
	t.Setenv("OBSHIP_URL", "https://env.example.com")
	t.Setenv("OBSHIP_TOKEN", "env-token")
	t.Setenv("OBSHIP_BATCH_TIME", "250ms")
	t.Setenv("OBSHIP_BATCH_COUNT", "25")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}

	if cfg.URL != "https://env.example.com" {
		t.Errorf("URL = %q", cfg.URL)
	}
	if cfg.Token != "env-token" {
		t.Errorf("Token = %q", cfg.Token)
	}
	if cfg.BatchTime != 250*time.Millisecond {
		t.Errorf("BatchTime = %v, want 250ms", cfg.BatchTime)
	}
	if cfg.BatchCount != 25 {
		t.Errorf("BatchCount = %d, want 25", cfg.BatchCount)
	}
}

func TestApplyEnvConfigPrecedence(t *testing.T) {
	t.Setenv("OBSHIP_URL", "https://env.example.com")

	cfg := DefaultConfig()
	cfg.URL = "https://flag.example.com"
	changed := map[string]bool{"url": true}

	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig: %v", err)
	}
	if cfg.URL != "https://flag.example.com" {
		t.Errorf("URL = %q, want flag value preserved over env", cfg.URL)
	}
}

func TestApplyEnvConfigBadValue(t *testing.T) {
	t.Setenv("OBSHIP_BATCH_COUNT", "many")

	cfg := DefaultConfig()
	if err := ApplyEnvConfig(&cfg, nil); err == nil {
		t.Errorf("ApplyEnvConfig = nil, want parse error")
	}
}
