// Package obship provides a lightweight client for shipping structured
// records to an HTTP collection endpoint with adaptive batching.
//
// Example usage:
//
//	client, err := obship.New(obship.Config{
//	    URL:   "https://collect.example.com/v1/http",
//	    Token: "your-api-token",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	client.Send(map[string]any{"event": "signup"}, nil)
//	defer client.Close(context.Background())
//
// This package re-exports the client from pkg/obship for one-import usage;
// import the sub-packages directly for finer-grained control.
package obship

import (
	client "github.com/observeinc/obship/pkg/obship"
)

// Config holds the configuration for the batching client.
// URL and Token are required; zero-valued limits take package defaults.
type Config = client.Config

// Client ships structured records with adaptive batching.
type Client = client.Client

// Handle is the completion handle returned for one submitted record.
type Handle = client.Handle

// Callback is an optional per-record outcome notification.
type Callback = client.Callback

// State is the client's transmission state.
type State = client.State

// Option configures optional behavior of the client.
type Option = client.Option

// Transmission states.
const (
	StateIdle    = client.StateIdle
	StateSending = client.StateSending
)

// Sentinel errors surfaced through handles and constructors.
var (
	ErrInvalidRecord   = client.ErrInvalidRecord
	ErrRecordTooLarge  = client.ErrRecordTooLarge
	ErrInvalidConfig   = client.ErrInvalidConfig
	ErrShutdownTimeout = client.ErrShutdownTimeout
)

// New creates a client with the given configuration.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Client, error) {
	return client.New(cfg, opts...)
}

// WithHTTPClient sets a custom HTTP client for transmissions.
func WithHTTPClient(c client.HTTPClient) Option {
	return client.WithHTTPClient(c)
}

// WithLogger sets a custom logger for structured logging.
func WithLogger(l client.Logger) Option {
	return client.WithLogger(l)
}

// WithClock sets the clock used for timestamp injection.
func WithClock(c client.Clock) Option {
	return client.WithClock(c)
}
