package obship

import (
	"net/http"

	"github.com/observeinc/obship/internal/ports"
	"github.com/observeinc/obship/pkg/log"
)

// HTTPClient is the interface for making HTTP requests.
// *http.Client satisfies this interface.
type HTTPClient = ports.HTTPClient

// Logger is the interface for structured logging.
type Logger = log.Logger

// Clock provides the current time for timestamp injection.
type Clock = ports.Clock

// Option configures optional behavior of the client.
type Option func(*options)

// options holds the optional configuration for a Client.
type options struct {
	httpClient ports.HTTPClient
	logger     ports.Logger
	clock      ports.Clock
}

// defaultOptions returns options with sensible defaults.
func defaultOptions(client *http.Client) options {
	return options{
		httpClient: client,
		clock:      ports.SystemClock(),
	}
}

// WithHTTPClient sets a custom HTTP client for transmissions.
// If not provided, a default client with the configured timeout is used.
func WithHTTPClient(client HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock sets the clock used for timestamp injection.
// Tests use this to make injected timestamps deterministic.
func WithClock(clock Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}
