package engine

import (
	"context"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/observeinc/obship/internal/domain"
	"github.com/observeinc/obship/internal/ports"
)

// State represents the transmission state of the engine.
type State int

const (
	// StateIdle means no transmission is in flight; the next submission is
	// flushed immediately for lowest latency.
	StateIdle State = iota

	// StateSending means a transmission is outstanding; submissions
	// accumulate until a count, size, or time trigger fires.
	StateSending
)

// String returns a human-readable representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateSending:
		return "Sending"
	default:
		return "Unknown"
	}
}

// Engine is the adaptive batching engine. It accepts structured records,
// decides per submission whether to transmit immediately or accumulate, and
// resolves every record's completion handle exactly once.
//
// All buffer mutation (enqueue, trigger evaluation, detach-and-reset) runs
// under a single mutex, so no submission or flush can interleave
// mid-mutation. A single drain goroutine transmits detached batches in
// detach order, one at a time.
type Engine struct {
	cfg    Config
	sender ports.BatchSender
	clock  ports.Clock
	logger ports.Logger
	meta   ports.SendMetadata

	mu         sync.Mutex
	buf        *domain.Buffer
	queue      []*domain.Batch
	state      State
	draining   bool
	timerArmed bool

	wg sync.WaitGroup
}

// New creates an engine with the given configuration and collaborators.
// The configuration must already be defaulted and validated.
func New(cfg Config, sender ports.BatchSender, clock ports.Clock, logger ports.Logger) *Engine {
	return &Engine{
		cfg:    cfg,
		sender: sender,
		clock:  clock,
		logger: logger,
		meta: ports.SendMetadata{
			URL:      cfg.URL,
			Token:    cfg.Token,
			Hostname: hostname(),
			OSArch:   runtime.GOOS + "/" + runtime.GOARCH,
		},
		buf:   domain.NewBuffer(),
		state: StateIdle,
	}
}

// Send submits a record, applying the full trigger evaluation: an idle
// engine flushes immediately; otherwise the count and size triggers are
// checked, and failing both, a deferred flush is armed. The callback may be
// nil. The returned handle resolves exactly once with the record's outcome.
func (e *Engine) Send(record interface{}, callback domain.Callback) *domain.Handle {
	item, handle := e.prepare(record, callback)
	if item == nil {
		return handle
	}

	e.mu.Lock()
	e.buf.Append(item)
	switch {
	case e.state == StateIdle:
		e.flushLocked()
	case e.buf.Len() >= e.cfg.BatchCount:
		e.flushLocked()
	case e.buf.Bytes() > e.cfg.SizeLimit:
		e.flushLocked()
	default:
		e.armTimerLocked()
	}
	e.mu.Unlock()

	return handle
}

// SendNow submits a record and flushes unconditionally, bypassing all
// trigger evaluation. The transmitted batch covers the record just
// submitted plus anything already buffered.
func (e *Engine) SendNow(record interface{}, callback domain.Callback) *domain.Handle {
	item, handle := e.prepare(record, callback)
	if item == nil {
		return handle
	}

	e.mu.Lock()
	e.buf.Append(item)
	e.flushLocked()
	e.mu.Unlock()

	return handle
}

// Flush detaches and queues the current buffer for transmission if it is
// non-empty. It does not wait for the transmission to complete.
func (e *Engine) Flush() {
	e.mu.Lock()
	e.flushLocked()
	e.mu.Unlock()
}

// Close flushes the buffer and waits for queued transmissions to finish or
// the context to expire. Records submitted after Close are not flushed.
func (e *Engine) Close(ctx context.Context) error {
	e.Flush()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return domain.ErrShutdownTimeout
	}
}

// Status returns the current transmission state.
// Safe to call concurrently from any goroutine.
func (e *Engine) Status() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// prepare validates and serializes a record. On validation failure the
// handle is resolved synchronously, the misuse is logged, and a nil item is
// returned; the record never reaches the buffer.
func (e *Engine) prepare(record interface{}, callback domain.Callback) (*domain.Item, *domain.Handle) {
	handle := domain.NewHandle()
	payload, err := e.encode(record)
	if err != nil {
		e.logger.Warn("rejected record", ports.Err(err))
		e.resolve(domain.NewItem(nil, handle, callback), err)
		return nil, handle
	}
	return domain.NewItem(payload, handle, callback), handle
}

// flushLocked detaches the buffer into the transmission queue and starts
// the drain goroutine if one is not already running. The engine is marked
// sending before the detach. Callers must hold e.mu.
func (e *Engine) flushLocked() {
	if e.buf.Empty() {
		return
	}

	e.state = StateSending
	batch := e.buf.Detach()
	e.queue = append(e.queue, batch)

	if !e.draining {
		e.draining = true
		e.wg.Add(1)
		go e.drain()
	}
}

// armTimerLocked arms the deferred-flush timer unless one is already
// pending. Overlapping submissions share a single timer, which preserves
// the guarantee that the oldest unflushed item waits at most BatchTime.
// Callers must hold e.mu.
func (e *Engine) armTimerLocked() {
	if e.timerArmed {
		return
	}
	e.timerArmed = true
	time.AfterFunc(e.cfg.BatchTime, e.timerFire)
}

// timerFire runs when the deferred-flush timer elapses. The buffer may
// already have been drained by a count or size trigger, in which case this
// is a no-op.
func (e *Engine) timerFire() {
	e.mu.Lock()
	e.timerArmed = false
	if !e.buf.Empty() {
		e.flushLocked()
	}
	e.mu.Unlock()
}

// drain transmits queued batches in detach order, one at a time, and
// notifies every item of its batch's outcome. It exits when the queue is
// empty; if the freshly-filled buffer is also empty the engine returns to
// idle, otherwise it stays in the sending state and the buffer waits for
// the next submission's trigger evaluation or an armed timer.
func (e *Engine) drain() {
	defer e.wg.Done()

	for {
		e.mu.Lock()
		if len(e.queue) == 0 {
			if e.buf.Empty() {
				e.state = StateIdle
			}
			e.draining = false
			e.mu.Unlock()
			return
		}
		batch := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()

		e.transmit(batch)
	}
}

// transmit sends one batch and resolves all of its items with the same
// outcome.
func (e *Engine) transmit(batch *domain.Batch) {
	ctx, cancel := context.WithTimeout(context.Background(), e.cfg.HTTPTimeout)
	err := e.sender.Send(ctx, batch, e.meta)
	cancel()

	if err != nil {
		e.logger.Error("batch send failed",
			ports.Int("items", batch.Size()),
			ports.Int("bytes", batch.TotalBytes),
			ports.Err(err))
	} else {
		e.logger.Debug("batch sent",
			ports.Int("items", batch.Size()),
			ports.Int("bytes", batch.TotalBytes))
	}

	e.notify(batch, err)
}

// hostname returns the current hostname.
func hostname() string {
	if h, err := os.Hostname(); err == nil {
		return h
	}
	return "unknown"
}
