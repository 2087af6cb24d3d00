package stripeapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

// Field binds a key in a JSON object to the location its value is decoded
// into. Fields are created with Required or Optional.
type Field struct {
	key      string
	dst      interface{}
	required bool
}

var (
	// ErrMissingField denotes a required field that was not in the decoded
	// object.
	ErrMissingField = errors.New("missing required field")

	// ErrNullField denotes a required field that was given as null.
	ErrNullField = errors.New("required field is null")

	null = []byte("null")
)

// Required returns a Field for the given key that must be present in the
// object being decoded, and must not be null.
func Required(key string, dst interface{}) Field {
	return Field{
		key:      key,
		dst:      dst,
		required: true,
	}
}

// Optional returns a Field for the given key that may be absent or null in the
// object being decoded. In either case the destination is left untouched.
func Optional(key string, dst interface{}) Field {
	return Field{
		key: key,
		dst: dst,
	}
}

// DecodeObject walks the keys of the JSON object in data once, decoding the
// value of each key that matches one of the given fields into that field's
// destination. Keys that match no field, such as "object", are skipped. If a
// required field is not seen then a *DecodeError wrapping ErrMissingField is
// returned. A null object leaves the destinations untouched, unless one of the
// fields is required, in which case a *DecodeError wrapping ErrNullField is
// returned.
//
// The destinations are written to as the object is walked, so callers that
// must not expose a partially decoded value should decode into a copy and
// assign it once DecodeObject returns nil.
func DecodeObject(data []byte, fields ...Field) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, null) {
		for _, f := range fields {
			if f.required {
				return &DecodeError{Err: ErrNullField}
			}
		}
		return nil
	}

	if len(data) == 0 || data[0] != '{' {
		return &DecodeError{Err: errors.New("expected object")}
	}

	index := make(map[string]int, len(fields))

	for i, f := range fields {
		index[f.key] = i
	}

	seen := make([]bool, len(fields))

	err := jsonparser.ObjectEach(data, func(key, val []byte, typ jsonparser.ValueType, _ int) error {
		i, ok := index[string(key)]

		if !ok {
			return nil
		}

		f := fields[i]
		seen[i] = true

		if typ == jsonparser.Null {
			if f.required {
				return &DecodeError{Path: f.key, Err: ErrNullField}
			}
			return nil
		}

		if err := decodeValue(f.dst, val, typ); err != nil {
			return prefixPath(f.key, err)
		}
		return nil
	})

	if err != nil {
		var derr *DecodeError

		if errors.As(err, &derr) {
			return err
		}
		return &DecodeError{Err: err}
	}

	for i, f := range fields {
		if f.required && !seen[i] {
			return &DecodeError{Path: f.key, Err: ErrMissingField}
		}
	}
	return nil
}

func decodeValue(dst interface{}, val []byte, typ jsonparser.ValueType) error {
	switch v := dst.(type) {
	case *string:
		if typ != jsonparser.String {
			return fmt.Errorf("expected string, got %v", typ)
		}

		s, err := jsonparser.ParseString(val)

		if err != nil {
			return err
		}
		(*v) = s
	case *int64:
		if typ != jsonparser.Number {
			return fmt.Errorf("expected number, got %v", typ)
		}

		i, err := jsonparser.ParseInt(val)

		if err != nil {
			return err
		}
		(*v) = i
	case *bool:
		if typ != jsonparser.Boolean {
			return fmt.Errorf("expected boolean, got %v", typ)
		}

		b, err := jsonparser.ParseBoolean(val)

		if err != nil {
			return err
		}
		(*v) = b
	case *float64:
		if typ != jsonparser.Number {
			return fmt.Errorf("expected number, got %v", typ)
		}

		f, err := jsonparser.ParseFloat(val)

		if err != nil {
			return err
		}
		(*v) = f
	default:
		// jsonparser hands back strings without their quotes.
		if typ == jsonparser.String {
			quoted := make([]byte, 0, len(val)+2)
			quoted = append(quoted, '"')
			quoted = append(quoted, val...)
			val = append(quoted, '"')
		}
		return json.Unmarshal(val, dst)
	}
	return nil
}

func prefixPath(key string, err error) error {
	var derr *DecodeError

	if errors.As(err, &derr) {
		path := key

		if derr.Path != "" {
			path += "." + derr.Path
		}
		return &DecodeError{Path: path, Err: derr.Err}
	}
	return &DecodeError{Path: key, Err: err}
}
