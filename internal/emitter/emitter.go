// Package emitter serializes bson documents as pretty-printed JSON files.
package emitter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"
)

// orderedDoc renders a bson.D as a JSON object with keys in document order.
// encoding/json cannot marshal bson.D as an object, and the driver's extended
// JSON encoder rejects the top-level array the commands artifact needs.
type orderedDoc bson.D

func (d orderedDoc) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(ordered(e.Value))
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ordered wraps bson containers so nested key order survives json encoding.
func ordered(v any) any {
	switch t := v.(type) {
	case bson.D:
		return orderedDoc(t)
	case []bson.D:
		out := make([]any, len(t))
		for i, d := range t {
			out[i] = orderedDoc(d)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = ordered(e)
		}
		return out
	default:
		return v
	}
}

// Marshal renders v as UTF-8 JSON with two-space indentation.
func Marshal(v any) ([]byte, error) {
	return json.MarshalIndent(ordered(v), "", "  ")
}

// WriteJSON overwrites path with the pretty-printed encoding of v. The target
// directory must already exist; a missing directory surfaces as the write
// error.
func WriteJSON(path string, v any) error {
	data, err := Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
