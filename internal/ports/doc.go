// Package ports defines the interfaces (ports) that connect the batching
// engine to infrastructure adapters.
//
// In Clean Architecture / Hexagonal Architecture, ports are the boundaries
// between the application core and the outside world. They define what the
// engine needs from external systems without specifying how those needs
// are fulfilled.
//
// # Port Interfaces
//
//   - [BatchSender]: Transmits detached batches to the collection endpoint
//   - [HTTPClient]: HTTP request abstraction for dependency injection
//   - [Clock]: Provider of "now" for deterministic timestamp injection
//   - [Logger]: Structured logging abstraction
//
// # Usage
//
// The engine (internal/engine) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (net/http, system clock, zerolog, etc.).
//
// This separation enables:
//   - Testing engine logic with fake senders and clocks
//   - Swapping infrastructure without changing batching behavior
//   - Clear boundaries and dependency direction
package ports
