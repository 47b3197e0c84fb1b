// Package output serializes converted tables to JSON files.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

// ToJSON encodes v as a 2-space indented JSON document followed by a
// newline. Non-ASCII and HTML characters are written literally. A nil
// slice encodes as an empty array.
func ToJSON(v interface{}) ([]byte, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice && rv.IsNil() {
		v = []interface{}{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName returns the output file name for the table at the given
// 1-based plan position.
func FileName(index int, table string) string {
	return fmt.Sprintf("%d-%s.json", index, table)
}

// WriteFile encodes v and writes it to dir/name in a single write,
// creating dir if needed. It returns the written path.
func WriteFile(dir, name string, v interface{}) (string, error) {
	data, err := ToJSON(v)
	if err != nil {
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}
