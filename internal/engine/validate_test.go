package engine

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/observeinc/obship/internal/domain"
	"github.com/observeinc/obship/pkg/log"
)

func newEncodeEngine() *Engine {
	return New(testConfig(), &fakeSender{}, fakeClock{now: time.UnixMilli(1234)}, log.NewNoopLogger())
}

func TestIsStructured(t *testing.T) {
	type record struct {
		Msg string `json:"msg"`
	}
	var nilPtr *record

	tests := []struct {
		name   string
		record interface{}
		want   bool
	}{
		{"map", map[string]int{"a": 1}, true},
		{"struct", record{Msg: "hi"}, true},
		{"struct pointer", &record{Msg: "hi"}, true},
		{"nil", nil, false},
		{"nil pointer", nilPtr, false},
		{"nil map", map[string]int(nil), false},
		{"int", 7, false},
		{"string", "hello", false},
		{"bool", true, false},
		{"slice", []int{1, 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isStructured(tt.record); got != tt.want {
				t.Errorf("isStructured(%v) = %v, want %v", tt.record, got, tt.want)
			}
		})
	}
}

func TestEncodeInjectsTimestamp(t *testing.T) {
	e := newEncodeEngine()

	payload, err := e.encode(map[string]string{"msg": "hi"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.HasSuffix(string(payload), "\n") {
		t.Errorf("payload missing newline delimiter: %q", payload)
	}
	if !strings.Contains(string(payload), `"timestamp":1234`) {
		t.Errorf("payload = %q, want injected timestamp", payload)
	}
}

func TestEncodePreservesCallerTimestamp(t *testing.T) {
	e := newEncodeEngine()

	payload, err := e.encode(map[string]interface{}{"timestamp": 99})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got, want := string(payload), "{\"timestamp\":99}\n"; got != want {
		t.Errorf("encode = %q, want %q", got, want)
	}
}

func TestEncodeStructRecord(t *testing.T) {
	e := newEncodeEngine()

	record := struct {
		Msg string `json:"msg"`
	}{Msg: "hi"}

	payload, err := e.encode(record)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !strings.Contains(string(payload), `"msg":"hi"`) {
		t.Errorf("payload = %q, want struct fields serialized", payload)
	}
	if !strings.Contains(string(payload), `"timestamp":1234`) {
		t.Errorf("payload = %q, want injected timestamp", payload)
	}
}

func TestEncodeSizeCeiling(t *testing.T) {
	e := newEncodeEngine()

	// Just under the ceiling passes; the newline counts toward the limit.
	under := map[string]string{"data": strings.Repeat("x", domain.MaxRecordBytes-100)}
	if _, err := e.encode(under); err != nil {
		t.Fatalf("encode under ceiling: %v", err)
	}

	over := map[string]string{"data": strings.Repeat("x", domain.MaxRecordBytes)}
	if _, err := e.encode(over); !errors.Is(err, domain.ErrRecordTooLarge) {
		t.Errorf("encode over ceiling = %v, want ErrRecordTooLarge", err)
	}
}
