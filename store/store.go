// Package store keeps a local mirror of the objects fetched from Stripe. Each
// object is stored as the JSON Stripe sent, keyed by its ID.
package store

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/andrewpillar/stripeapi"
)

// Record is a single object held in a Store.
type Record struct {
	ID       string
	Object   string
	Livemode bool
	Data     json.RawMessage
	SyncedAt time.Time
}

// Store is the data store objects are mirrored into.
type Store interface {
	// Put will put the given Object into the underlying data store. If an
	// Object with the same ID already exists then it is replaced.
	Put(stripeapi.Object) error

	// Remove will remove the Object with the given ID from the underlying
	// data store. If the Object cannot be found then this returns nil.
	Remove(id string) error

	// Lookup will lookup the Object with the given ID. Whether or not the
	// Object could be found is denoted by the returned bool value.
	Lookup(id string) (*Record, bool, error)

	// Objects returns every Record of the given object type, such as
	// "terminal.location".
	Objects(objectType string) ([]*Record, error)

	// Since returns the Records of the given object type that were put
	// after the given time.
	Since(objectType string, t time.Time) ([]*Record, error)
}

// ErrNoID is returned when an Object without an ID is put into a Store.
var ErrNoID = errors.New("object has no id")

// Decode decodes the data of the Record into the given value.
func (r *Record) Decode(v interface{}) error { return json.Unmarshal(r.Data, v) }

// newRecord marshals the given Object into the Record it would be stored as.
func newRecord(obj stripeapi.Object) (*Record, error) {
	id := obj.GetID()

	if id == "" {
		return nil, ErrNoID
	}

	data, err := json.Marshal(obj)

	if err != nil {
		return nil, err
	}

	val, err := stripeapi.ParseValue(data)

	if err != nil {
		return nil, err
	}

	livemode, _ := val.Bool("livemode")

	return &Record{
		ID:       id,
		Object:   obj.ObjectName(),
		Livemode: livemode,
		Data:     data,
		SyncedAt: time.Now(),
	}, nil
}

// Stale returns the Records of the given object type that were last put at or
// before the given time. After a full Sync started at that time these are the
// objects that no longer exist in Stripe.
func Stale(s Store, objectType string, t time.Time) ([]*Record, error) {
	all, err := s.Objects(objectType)

	if err != nil {
		return nil, err
	}

	fresh, err := s.Since(objectType, t)

	if err != nil {
		return nil, err
	}

	synced := make(map[string]struct{}, len(fresh))

	for _, r := range fresh {
		synced[r.ID] = struct{}{}
	}

	stale := make([]*Record, 0)

	for _, r := range all {
		if _, ok := synced[r.ID]; !ok {
			stale = append(stale, r)
		}
	}
	return stale, nil
}

// Sync puts every object yielded by the given Iter into the Store, and
// returns the number of objects that were put. Syncing stops at the first
// error, either from the Iter or the Store.
func Sync[T stripeapi.Object](s Store, it *stripeapi.Iter[T]) (int, error) {
	n := 0

	for obj, err := range it.All() {
		if err != nil {
			return n, err
		}

		if err := s.Put(obj); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Apply applies the result of retrieving, or updating an object that may
// have been deleted. A live object is put into the Store, and a deleted
// object is removed from it.
func Apply[T, D any, PT interface {
	*T
	stripeapi.Object
}](s Store, m stripeapi.MaybeDeleted[T, D]) error {
	if m.IsDeleted() {
		return s.Remove(m.GetID())
	}

	if m.Object == nil {
		return nil
	}
	return s.Put(PT(m.Object))
}
