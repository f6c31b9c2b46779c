package engine

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/observeinc/obship/internal/domain"
)

// timestampField is injected into a record's serialized form when the
// caller did not supply one. The value is epoch milliseconds.
const timestampField = "timestamp"

// encode validates a submitted record and serializes it to a
// newline-terminated JSON line, injecting a timestamp when absent.
// The returned payload's length is fixed here and never recomputed.
func (e *Engine) encode(record interface{}) ([]byte, error) {
	if !isStructured(record) {
		return nil, domain.ErrInvalidRecord
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
	}

	// The top level must serialize to a JSON object so a timestamp can be
	// injected alongside the caller's fields.
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, domain.ErrInvalidRecord
	}

	if _, ok := fields[timestampField]; !ok {
		ts, err := json.Marshal(e.clock.Now().UnixMilli())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
		}
		fields[timestampField] = ts
		if data, err = json.Marshal(fields); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRecord, err)
		}
	}

	payload := append(data, '\n')
	if len(payload) > domain.MaxRecordBytes {
		return nil, domain.ErrRecordTooLarge
	}

	return payload, nil
}

// isStructured reports whether the record is a non-nil map or struct,
// possibly behind pointers. Primitives, slices, and nil values are not
// structured records.
func isStructured(record interface{}) bool {
	v := reflect.ValueOf(record)
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return false
	}
	switch v.Kind() {
	case reflect.Map:
		return !v.IsNil()
	case reflect.Struct:
		return true
	default:
		return false
	}
}
