package stripeapi

import (
	"bytes"
	"encoding/json"
)

// Object is implemented by the top-level resources of the Stripe API. Every
// resource has an ID, and a name for the type of object it is, for example
// "terminal.location".
type Object interface {
	GetID() string

	ObjectName() string
}

// MarshalObject marshals the given value to JSON, and adds the "object" key
// with the given name to the start of the encoded object. Resources use this
// in their MarshalJSON method so the encoded form matches what Stripe sends.
func MarshalObject(name string, v interface{}) ([]byte, error) {
	b, err := json.Marshal(v)

	if err != nil {
		return nil, err
	}

	if len(b) < 2 || b[0] != '{' {
		return b, nil
	}

	tag, err := json.Marshal(name)

	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	buf.WriteString(`{"object":`)
	buf.Write(tag)

	if len(b) > 2 {
		buf.WriteByte(',')
	}
	buf.Write(b[1:])
	return buf.Bytes(), nil
}
