package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/observeinc/obship/internal/domain"
)

func TestConfigSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	if cfg.BatchTime != DefaultBatchTime {
		t.Errorf("BatchTime = %v, want %v", cfg.BatchTime, DefaultBatchTime)
	}
	if cfg.BatchCount != DefaultBatchCount {
		t.Errorf("BatchCount = %d, want %d", cfg.BatchCount, DefaultBatchCount)
	}
	if cfg.SizeLimit != DefaultSizeLimit {
		t.Errorf("SizeLimit = %d, want %d", cfg.SizeLimit, DefaultSizeLimit)
	}
	if cfg.HTTPTimeout != DefaultHTTPTimeout {
		t.Errorf("HTTPTimeout = %v, want %v", cfg.HTTPTimeout, DefaultHTTPTimeout)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() Config {
		cfg := Config{
			URL:   "https://collect.example.com/v1/http",
			Token: "secret",
		}
		cfg.SetDefaults()
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing url", func(c *Config) { c.URL = "" }, true},
		{"relative url", func(c *Config) { c.URL = "/v1/http" }, true},
		{"unparsable url", func(c *Config) { c.URL = "://bad" }, true},
		{"missing token", func(c *Config) { c.Token = "" }, true},
		{"negative batch time", func(c *Config) { c.BatchTime = -time.Second }, true},
		{"zero batch count", func(c *Config) { c.BatchCount = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
			} else if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfigValidateTrimsTrailingSlash(t *testing.T) {
	cfg := Config{URL: "https://collect.example.com/", Token: "secret"}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.URL != "https://collect.example.com" {
		t.Errorf("URL = %q, want trailing slash trimmed", cfg.URL)
	}
}
