package domain

import "errors"

// Domain errors represent error conditions in the obship domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidRecord is returned when a submitted record is nil or not a
	// structured value. The record never reaches the accumulation buffer.
	ErrInvalidRecord = errors.New("obship: record must be an object")

	// ErrRecordTooLarge is returned when a record's serialized form,
	// including its trailing newline, exceeds MaxRecordBytes.
	ErrRecordTooLarge = errors.New("obship: record exceeds maximum datum size")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("obship: invalid configuration")

	// ErrShutdownTimeout is returned when Close gives up waiting for the
	// in-flight transmission to finish.
	ErrShutdownTimeout = errors.New("obship: shutdown timeout")
)

// MaxRecordBytes is the largest serialized record accepted by the engine,
// measured after encoding and including the trailing newline delimiter.
const MaxRecordBytes = 1_000_001
