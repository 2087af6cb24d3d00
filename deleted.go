package stripeapi

import (
	"encoding/json"
)

// MaybeDeleted is returned from the endpoints that respond with either the
// object requested, or the tombstone of that object if it has been deleted.
// Exactly one of Object or Tombstone will be set once decoded. The tombstone
// is chosen if, and only if, the response has a "deleted" key that is true.
type MaybeDeleted[T, D any] struct {
	Object    *T
	Tombstone *D
}

// IsDeleted reports whether the object has been deleted.
func (m MaybeDeleted[T, D]) IsDeleted() bool { return m.Tombstone != nil }

// GetID returns the ID of either the object, or its tombstone.
func (m MaybeDeleted[T, D]) GetID() string {
	var v interface{}

	if m.Tombstone != nil {
		v = m.Tombstone
	} else if m.Object != nil {
		v = m.Object
	}

	if o, ok := v.(interface{ GetID() string }); ok {
		return o.GetID()
	}
	return ""
}

func (m *MaybeDeleted[T, D]) UnmarshalJSON(data []byte) error {
	v, err := ParseValue(data)

	if err != nil {
		return err
	}

	if deleted, ok := v.Bool("deleted"); ok && deleted {
		d := new(D)

		if err := v.Decode(d); err != nil {
			return err
		}

		m.Object = nil
		m.Tombstone = d
		return nil
	}

	t := new(T)

	if err := v.Decode(t); err != nil {
		return err
	}

	m.Object = t
	m.Tombstone = nil
	return nil
}

func (m MaybeDeleted[T, D]) MarshalJSON() ([]byte, error) {
	if m.Tombstone != nil {
		return json.Marshal(m.Tombstone)
	}
	return json.Marshal(m.Object)
}
