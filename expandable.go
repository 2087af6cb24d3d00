package stripeapi

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/buger/jsonparser"
)

// Expandable is a field that is either the ID of an object, or the object
// itself if the field was given in the expand parameter of the request. The
// zero value is an absent field.
type Expandable[T any] struct {
	ID     string
	Object *T
}

// ExpandableID returns an Expandable holding only the given ID.
func ExpandableID[T any](id string) Expandable[T] {
	return Expandable[T]{
		ID: id,
	}
}

// IsPresent reports whether the field holds either an ID or an object.
func (e Expandable[T]) IsPresent() bool { return e.ID != "" || e.Object != nil }

// IsExpanded reports whether the field holds the object.
func (e Expandable[T]) IsExpanded() bool { return e.Object != nil }

// GetID returns the ID of the field, whether or not it was expanded.
func (e Expandable[T]) GetID() string { return e.ID }

func (e *Expandable[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, null) {
		(*e) = Expandable[T]{}
		return nil
	}

	switch data[0] {
	case '"':
		var id string

		if err := json.Unmarshal(data, &id); err != nil {
			return err
		}

		(*e) = Expandable[T]{
			ID: id,
		}
	case '{':
		id, err := jsonparser.GetString(data, "id")

		if err != nil && err != jsonparser.KeyPathNotFoundError {
			return &DecodeError{Path: "id", Err: err}
		}

		obj := new(T)

		if err := json.Unmarshal(data, obj); err != nil {
			return err
		}

		(*e) = Expandable[T]{
			ID:     id,
			Object: obj,
		}
	default:
		return errors.New("expected id or object")
	}
	return nil
}

func (e Expandable[T]) MarshalJSON() ([]byte, error) {
	if e.Object != nil {
		return json.Marshal(e.Object)
	}

	if e.ID != "" {
		return json.Marshal(e.ID)
	}
	return null, nil
}
