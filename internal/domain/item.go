package domain

// Callback is an optional per-record notification invoked with the same
// outcome the record's Handle resolves with: nil on success, a descriptive
// error on failure. Callbacks run on the engine's transmission goroutine.
type Callback func(err error)

// Item is a single queued record: the serialized newline-terminated payload,
// the completion handle returned to the caller, and an optional callback.
//
// An item is owned by exactly one Buffer until detached into a Batch;
// ownership then transfers to the transmission pipeline, which resolves the
// handle exactly once and discards the item.
type Item struct {
	// Payload is the serialized record including its trailing newline.
	// Its length is fixed at enqueue time and never recomputed.
	Payload []byte

	// Handle is resolved exactly once with the record's outcome.
	Handle *Handle

	// Callback, if non-nil, is invoked after Handle resolves.
	Callback Callback
}

// NewItem creates an item for the given payload. The callback may be nil.
func NewItem(payload []byte, handle *Handle, callback Callback) *Item {
	return &Item{
		Payload:  payload,
		Handle:   handle,
		Callback: callback,
	}
}
