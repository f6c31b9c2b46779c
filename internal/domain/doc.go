// Package domain contains the core domain entities and value objects for obship.
//
// This package represents the innermost layer of the Clean Architecture. It has
// no dependencies on infrastructure concerns (HTTP, timers, logging) and
// contains only pure business logic.
//
// # Entities
//
//   - [Item]: A single serialized record with its completion handle and callback
//   - [Buffer]: The ordered accumulation buffer with a running byte counter
//   - [Batch]: An aggregate of items detached from the buffer for one transmission
//   - [Handle]: The resolve-exactly-once completion handle returned to callers
//
// # Design Principles
//
// Domain entities are:
//   - Free of infrastructure dependencies
//   - Focused on business rules and invariants (ordering, byte accounting,
//     single resolution)
//   - Testable without mocks or external systems
package domain
