package store

import (
	"sort"
	"sync"
	"time"

	"github.com/andrewpillar/stripeapi"
)

// Memory is a Store that holds its Records in memory. It is safe for
// concurrent use.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*Record
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		records: make(map[string]*Record),
	}
}

func (m *Memory) Put(obj stripeapi.Object) error {
	r, err := newRecord(obj)

	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[r.ID] = r
	return nil
}

func (m *Memory) Remove(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.records, id)
	return nil
}

func (m *Memory) Lookup(id string) (*Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	r, ok := m.records[id]
	return r, ok, nil
}

// Objects returns the Records of the given object type sorted by ID.
func (m *Memory) Objects(objectType string) ([]*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rr := make([]*Record, 0)

	for _, r := range m.records {
		if r.Object == objectType {
			rr = append(rr, r)
		}
	}

	sort.Slice(rr, func(i, j int) bool {
		return rr[i].ID < rr[j].ID
	})
	return rr, nil
}

// Since returns the Records of the given object type put after the given
// time, sorted by ID.
func (m *Memory) Since(objectType string, t time.Time) ([]*Record, error) {
	rr, err := m.Objects(objectType)

	if err != nil {
		return nil, err
	}

	since := make([]*Record, 0, len(rr))

	for _, r := range rr {
		if r.SyncedAt.After(t) {
			since = append(since, r)
		}
	}
	return since, nil
}

// Len returns the number of Records in the Store.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.records)
}
