package engine

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/observeinc/obship/internal/domain"
)

// Default limits for the batching engine.
const (
	// DefaultBatchTime is how long a record may sit in the buffer before a
	// deferred flush fires.
	DefaultBatchTime = 5 * time.Second

	// DefaultBatchCount is the queued-item count that forces an immediate
	// flush while a transmission is outstanding.
	DefaultBatchCount = 200

	// DefaultSizeLimit is the accumulated byte size that forces an
	// immediate flush while a transmission is outstanding.
	DefaultSizeLimit = 2_000_000

	// DefaultHTTPTimeout bounds a single transmission.
	DefaultHTTPTimeout = 30 * time.Second
)

// Config holds the configuration for the batching engine.
// All limits are fixed at construction and immutable thereafter.
type Config struct {
	// URL is the absolute collection endpoint. Required.
	URL string

	// Token is the bearer credential for the Authorization header. Required.
	Token string

	// BatchTime is the deferred-flush interval.
	BatchTime time.Duration

	// BatchCount is the item-count flush trigger.
	BatchCount int

	// SizeLimit is the byte-size flush trigger.
	SizeLimit int

	// HTTPTimeout bounds a single transmission.
	HTTPTimeout time.Duration
}

// SetDefaults fills in zero-valued limits with the package defaults.
func (c *Config) SetDefaults() {
	if c.BatchTime <= 0 {
		c.BatchTime = DefaultBatchTime
	}
	if c.BatchCount <= 0 {
		c.BatchCount = DefaultBatchCount
	}
	if c.SizeLimit <= 0 {
		c.SizeLimit = DefaultSizeLimit
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = DefaultHTTPTimeout
	}
}

// Validate checks the configuration for errors and normalizes the URL.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("%w: url is required", domain.ErrInvalidConfig)
	}
	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("%w: parse url: %v", domain.ErrInvalidConfig, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%w: url must be absolute", domain.ErrInvalidConfig)
	}

	if c.Token == "" {
		return fmt.Errorf("%w: token is required", domain.ErrInvalidConfig)
	}

	// Ensure no trailing slash
	c.URL = strings.TrimRight(c.URL, "/")

	if c.BatchTime <= 0 {
		return fmt.Errorf("%w: batch time must be positive", domain.ErrInvalidConfig)
	}
	if c.BatchCount <= 0 {
		return fmt.Errorf("%w: batch count must be positive", domain.ErrInvalidConfig)
	}
	if c.SizeLimit <= 0 {
		return fmt.Errorf("%w: size limit must be positive", domain.ErrInvalidConfig)
	}

	return nil
}
