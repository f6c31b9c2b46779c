package domain

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHandleResolveOnce(t *testing.T) {
	h := NewHandle()

	first := errors.New("first outcome")
	if !h.Resolve(first) {
		t.Fatalf("first Resolve returned false")
	}
	if h.Resolve(errors.New("second outcome")) {
		t.Errorf("second Resolve returned true, want no-op")
	}

	if got := h.Err(); got != first {
		t.Errorf("Err() = %v, want %v", got, first)
	}

	select {
	case <-h.Done():
	default:
		t.Errorf("Done not closed after resolution")
	}
}

func TestHandleErrBeforeResolution(t *testing.T) {
	h := NewHandle()
	if got := h.Err(); got != nil {
		t.Errorf("Err() = %v before resolution, want nil", got)
	}
}

func TestHandleWait(t *testing.T) {
	h := NewHandle()

	go func() {
		time.Sleep(10 * time.Millisecond)
		h.Resolve(nil)
	}()

	if err := h.Wait(context.Background()); err != nil {
		t.Errorf("Wait() = %v, want nil", err)
	}
}

func TestHandleWaitContextCanceled(t *testing.T) {
	h := NewHandle()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := h.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() = %v, want context.Canceled", err)
	}
}
