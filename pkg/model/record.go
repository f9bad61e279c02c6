package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// Record is an ordered mapping from field name to value. Keys keep the order
// in which they were first set, which mirrors the field order of the
// descriptor that produced the record.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates an empty record sized for the expected number of fields.
func NewRecord(capacity int) *Record {
	if capacity < 0 {
		capacity = 0
	}
	return &Record{
		keys:   make([]string, 0, capacity),
		values: make(map[string]any, capacity),
	}
}

// Set stores a value under name. The first Set of a name fixes its position;
// later Sets replace the value in place.
func (r *Record) Set(name string, value any) {
	if _, exists := r.values[name]; !exists {
		r.keys = append(r.keys, name)
	}
	r.values[name] = value
}

// Get returns the value stored under name.
func (r *Record) Get(name string) (any, bool) {
	value, ok := r.values[name]
	return value, ok
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Len reports the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Equal reports whether two records hold the same keys in the same order with
// deeply equal values. go-cmp picks this up when diffing records in tests.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	if len(r.keys) != len(other.keys) {
		return false
	}
	for i, key := range r.keys {
		if other.keys[i] != key {
			return false
		}
		if !reflect.DeepEqual(r.values[key], other.values[key]) {
			return false
		}
	}
	return true
}

// MarshalJSON serialises the record as an object with keys in insertion
// order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("model: marshal field %q: %w", key, err)
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// String renders the record for diagnostics.
func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	parts := make([]string, len(r.keys))
	for i, key := range r.keys {
		parts[i] = fmt.Sprintf("%s: %v", key, r.values[key])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
