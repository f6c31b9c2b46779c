package domain

import (
	"bytes"
	"testing"
)

func TestBufferByteCounter(t *testing.T) {
	buf := NewBuffer()

	payloads := []string{"{\"a\":1}\n", "{\"b\":22}\n", "{\"c\":333}\n"}
	want := 0
	for _, p := range payloads {
		buf.Append(NewItem([]byte(p), NewHandle(), nil))
		want += len(p)
		if buf.Bytes() != want {
			t.Errorf("Bytes() = %d, want %d", buf.Bytes(), want)
		}
	}

	if buf.Len() != len(payloads) {
		t.Errorf("Len() = %d, want %d", buf.Len(), len(payloads))
	}
}

func TestBufferDetach(t *testing.T) {
	buf := NewBuffer()
	buf.Append(NewItem([]byte("one\n"), NewHandle(), nil))
	buf.Append(NewItem([]byte("two\n"), NewHandle(), nil))

	batch := buf.Detach()

	if batch.Size() != 2 {
		t.Errorf("batch.Size() = %d, want 2", batch.Size())
	}
	if batch.TotalBytes != 8 {
		t.Errorf("batch.TotalBytes = %d, want 8", batch.TotalBytes)
	}
	if !buf.Empty() {
		t.Errorf("buffer not empty after detach")
	}
	if buf.Bytes() != 0 {
		t.Errorf("buffer Bytes() = %d after detach, want 0", buf.Bytes())
	}

	// New items fill a fresh buffer without touching the detached batch.
	buf.Append(NewItem([]byte("three\n"), NewHandle(), nil))
	if batch.Size() != 2 {
		t.Errorf("detached batch grew to %d items", batch.Size())
	}
}

func TestBatchPayloadOrder(t *testing.T) {
	buf := NewBuffer()
	buf.Append(NewItem([]byte("first\n"), NewHandle(), nil))
	buf.Append(NewItem([]byte("second\n"), NewHandle(), nil))
	buf.Append(NewItem([]byte("third\n"), NewHandle(), nil))

	batch := buf.Detach()
	got := batch.Payload()
	want := []byte("first\nsecond\nthird\n")

	if !bytes.Equal(got, want) {
		t.Errorf("Payload() = %q, want %q", got, want)
	}
	if len(got) != batch.TotalBytes {
		t.Errorf("payload length %d != TotalBytes %d", len(got), batch.TotalBytes)
	}
}
