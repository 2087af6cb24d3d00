package stripeapi

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
)

func Test_RetrieveAll(t *testing.T) {
	ids, err := ReadIDs(strings.NewReader(`# locations to fetch
tml_1
tml_2

tml_3
tml_missing
`))

	if err != nil {
		t.Fatal(err)
	}

	var inflight, peak int32

	fn := func(ctx context.Context, id string) (*testLocation, error) {
		n := atomic.AddInt32(&inflight, 1)
		defer atomic.AddInt32(&inflight, -1)

		for {
			p := atomic.LoadInt32(&peak)

			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}

		if id == "tml_missing" {
			return nil, errors.New("no such location")
		}
		return &testLocation{ID: id}, nil
	}

	failed := make([]string, 0)

	locs, err := RetrieveAll(context.Background(), ids, 2, fn, func(id string, err error) {
		failed = append(failed, id)
	})

	if err != nil {
		t.Fatal(err)
	}

	if len(locs) != len(ids) {
		t.Fatalf("unexpected number of locations, expected=%d, got=%d\n", len(ids), len(locs))
	}

	for i, id := range ids[:3] {
		if locs[i] == nil || locs[i].ID != id {
			t.Errorf("locs[%d] - unexpected location, expected=%q, got=%v\n", i, id, locs[i])
		}
	}

	if locs[3] != nil {
		t.Errorf("expected failed location to be nil, got=%v\n", locs[3])
	}

	if len(failed) != 1 || failed[0] != "tml_missing" {
		t.Errorf("unexpected failed ids, got=%v\n", failed)
	}

	if peak > 2 {
		t.Errorf("expected at most 2 concurrent calls, got=%d\n", peak)
	}

	if _, err := RetrieveAll(context.Background(), ids, 0, fn, nil); err == nil {
		t.Errorf("expected error without an error handler\n")
	}
}
