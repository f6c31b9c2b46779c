package obship

import (
	"context"
	"net/http"

	httpAdapter "github.com/observeinc/obship/internal/adapters/http"
	logAdapter "github.com/observeinc/obship/internal/adapters/log"
	"github.com/observeinc/obship/internal/domain"
	"github.com/observeinc/obship/internal/engine"
)

// Config holds the configuration for the batching client.
// URL and Token are required; zero-valued limits take package defaults.
type Config = engine.Config

// Handle is the completion handle returned for one submitted record.
// It resolves exactly once with the record's outcome.
type Handle = domain.Handle

// Callback is an optional per-record notification invoked with the same
// outcome the handle resolves with.
type Callback = domain.Callback

// State is the client's transmission state.
type State = engine.State

// Transmission states.
const (
	StateIdle    = engine.StateIdle
	StateSending = engine.StateSending
)

// Sentinel errors surfaced through handles and constructors.
var (
	ErrInvalidRecord   = domain.ErrInvalidRecord
	ErrRecordTooLarge  = domain.ErrRecordTooLarge
	ErrInvalidConfig   = domain.ErrInvalidConfig
	ErrShutdownTimeout = domain.ErrShutdownTimeout
)

// Client ships structured records to a collection endpoint with adaptive
// batching. Create one with New; it is safe for concurrent use.
type Client struct {
	config Config
	engine *engine.Engine
}

// New creates a client with the given configuration.
// Returns an error if configuration is invalid.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := defaultOptions(&http.Client{Timeout: cfg.HTTPTimeout})
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logAdapter.NewNoopLogger()
	}

	sender := httpAdapter.NewBatchSender(o.httpClient, logger)

	return &Client{
		config: cfg,
		engine: engine.New(cfg, sender, o.clock, logger),
	}, nil
}

// Send submits a record for delivery, applying the full trigger
// evaluation: an idle client flushes immediately, a busy one accumulates
// until a count, size, or time trigger fires. The callback may be nil.
//
// The record must be a map or struct; a timestamp field is injected only
// if the record does not already carry one.
func (c *Client) Send(record interface{}, callback Callback) *Handle {
	return c.engine.Send(record, callback)
}

// SendNow submits a record and flushes unconditionally and immediately,
// bypassing trigger evaluation. The transmitted batch covers the record
// just submitted plus anything already buffered.
func (c *Client) SendNow(record interface{}, callback Callback) *Handle {
	return c.engine.SendNow(record, callback)
}

// Flush queues any buffered records for transmission without waiting for
// the transmission to complete.
func (c *Client) Flush() {
	c.engine.Flush()
}

// Close flushes buffered records and waits for outstanding transmissions
// to finish or the context to expire. Returns ErrShutdownTimeout if the
// context wins. The client must not be used after Close.
func (c *Client) Close(ctx context.Context) error {
	return c.engine.Close(ctx)
}

// Status returns the current transmission state.
// Safe to call concurrently from any goroutine.
func (c *Client) Status() State {
	return c.engine.Status()
}
