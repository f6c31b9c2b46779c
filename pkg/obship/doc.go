// Package obship provides an embeddable client for shipping structured
// records to an HTTP collection endpoint with adaptive batching.
//
// The client accepts arbitrary structured records (maps or structs),
// serializes them to newline-delimited JSON, and batches them to trade
// latency for throughput under load. An idle client transmits the first
// record immediately; while a transmission is outstanding, records
// accumulate until a count, byte-size, or time trigger flushes them.
//
// # Usage
//
//	client, err := obship.New(obship.Config{
//	    URL:   "https://collect.example.com/v1/http",
//	    Token: "api-token",
//	})
//	if err != nil {
//	    return err
//	}
//
//	handle := client.Send(map[string]any{"event": "login", "user": "alice"}, nil)
//	if err := handle.Wait(ctx); err != nil {
//	    // the record was rejected or its batch failed to transmit
//	}
//
//	client.Close(ctx)
//
// # Outcomes
//
// Every submitted record gets a completion handle that resolves exactly
// once, with nil on success or a descriptive error on failure. Failures are
// always delivered as resolved values, never as panics, so fire-and-forget
// usage is safe: a caller who ignores the handle pays no penalty.
//
// An optional callback per record is invoked with the same outcome; a panic
// inside a callback is recovered and logged, never propagated.
//
// # Dependency Injection
//
// Options allow substituting the HTTP client, the logger, and the clock
// used for timestamp injection:
//
//	client, err := obship.New(cfg,
//	    obship.WithHTTPClient(customClient),
//	    obship.WithLogger(log.NewZerologAdapter()),
//	)
package obship
