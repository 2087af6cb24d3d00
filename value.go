package stripeapi

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Value is a JSON object that has been parsed into a tree of its top-level
// keys. This is used when the type of an object can only be determined from
// its content, and the object has to be inspected before being decoded.
type Value struct {
	raw    []byte
	fields map[string]json.RawMessage
}

// ParseValue parses the given JSON object into a Value.
func ParseValue(data []byte) (*Value, error) {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || data[0] != '{' {
		return nil, &DecodeError{Err: errors.New("expected object")}
	}

	fields := make(map[string]json.RawMessage)

	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &DecodeError{Err: err}
	}

	return &Value{
		raw:    data,
		fields: fields,
	}, nil
}

// Has reports whether the Value has the given key.
func (v *Value) Has(key string) bool {
	_, ok := v.fields[key]
	return ok
}

// Bool returns the value of the given key if it is a literal boolean. The
// second return value is false if the key is absent, or holds anything other
// than true or false.
func (v *Value) Bool(key string) (bool, bool) {
	raw, ok := v.fields[key]

	if !ok {
		return false, false
	}

	switch string(bytes.TrimSpace(raw)) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// String returns the value of the given key if it is a string.
func (v *Value) String(key string) (string, bool) {
	raw, ok := v.fields[key]

	if !ok {
		return "", false
	}

	var s string

	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Raw returns the raw JSON of the given key.
func (v *Value) Raw(key string) (json.RawMessage, bool) {
	raw, ok := v.fields[key]
	return raw, ok
}

// Decode decodes the entire Value into dst.
func (v *Value) Decode(dst interface{}) error {
	return json.Unmarshal(v.raw, dst)
}
