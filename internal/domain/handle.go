package domain

import (
	"context"
	"sync"
)

// Handle is the completion handle returned to a caller for one submitted
// record. It resolves exactly once, with nil on success or a descriptive
// error on failure. Failures are always carried as resolved values, never
// panics.
type Handle struct {
	once sync.Once
	done chan struct{}
	err  error
}

// NewHandle creates an unresolved handle.
func NewHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Resolve records the outcome and closes Done. The engine calls Resolve
// exactly once per item; subsequent calls are no-ops. It reports whether
// this call performed the resolution.
func (h *Handle) Resolve(err error) bool {
	resolved := false
	h.once.Do(func() {
		h.err = err
		close(h.done)
		resolved = true
	})
	return resolved
}

// Done returns a channel that is closed when the handle resolves.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Err returns the resolved outcome: nil on success or before resolution,
// the failure value after a failed resolution. Use Done or Wait to
// distinguish "not yet resolved" from "resolved successfully".
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Wait blocks until the handle resolves or the context is done. It returns
// the resolved outcome, or the context error if the context wins.
func (h *Handle) Wait(ctx context.Context) error {
	select {
	case <-h.done:
		return h.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
