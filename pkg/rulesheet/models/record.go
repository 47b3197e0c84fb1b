// Package models defines data structures for workbook conversion.
package models

import (
	"bytes"
	"encoding/json"
)

// Record represents one output row as an ordered set of column values.
// Keys keep the order in which they were first set, which is the source
// column order for normalized sheets.
type Record struct {
	keys   []string
	values map[string]interface{}
}

// NewRecord creates an empty record with room for n columns.
func NewRecord(n int) Record {
	return Record{
		keys:   make([]string, 0, n),
		values: make(map[string]interface{}, n),
	}
}

// Set stores v under key. A key that already exists keeps its position.
func (r *Record) Set(key string, v interface{}) {
	if r.values == nil {
		r.values = make(map[string]interface{})
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value stored under key.
func (r Record) Get(key string) (interface{}, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present, including keys holding nil.
func (r Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Keys returns the column names in order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// HasValue reports whether any column holds a non-nil value.
func (r Record) HasValue() bool {
	for _, v := range r.values {
		if v != nil {
			return true
		}
	}
	return false
}

// Len returns the number of columns.
func (r Record) Len() int {
	return len(r.keys)
}

// MarshalJSON encodes the record as a JSON object in key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := marshalNoEscape(r.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape encodes v without HTML escaping so that text such as
// "<13" reaches the output file literally.
func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
