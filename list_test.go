package stripeapi

import (
	"context"
	"errors"
	"testing"
)

type fakePage struct {
	query string
	body  string
	err   error
}

// fakeBackend serves the pages in order, and fails the test if a request is
// made with an unexpected query.
type fakeBackend struct {
	t     *testing.T
	pages []fakePage
	calls int
}

func (b *fakeBackend) Call(_ context.Context, d Description, _ ...RequestOption) ([]byte, error) {
	if b.calls >= len(b.pages) {
		b.t.Fatalf("unexpected request %d to %s\n", b.calls, d.Path)
	}

	page := b.pages[b.calls]
	b.calls++

	if q := d.Form().Encode(); q != page.query {
		b.t.Errorf("request %d - unexpected query, expected=%q, got=%q\n", b.calls, page.query, q)
	}

	if page.err != nil {
		return nil, page.err
	}
	return []byte(page.body), nil
}

func Test_Paginate(t *testing.T) {
	b := &fakeBackend{
		t: t,
		pages: []fakePage{
			{
				query: "limit=2",
				body:  `{"object":"list","data":[{"id":"promo_A","display_name":"A"},{"id":"promo_B","display_name":"B"}],"has_more":true,"url":"/v1/promotion_codes"}`,
			},
			{
				query: "limit=2&starting_after=promo_B",
				body:  `{"object":"list","data":[{"id":"promo_C","display_name":"C"}],"has_more":false,"url":"/v1/promotion_codes"}`,
			},
		},
	}

	it := Paginate[*testLocation](context.Background(), b, Get("/promotion_codes", Params{"limit": 2}))

	items, err := Collect(it)

	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"promo_A", "promo_B", "promo_C"}

	if len(items) != len(expected) {
		t.Fatalf("unexpected number of items, expected=%d, got=%d\n", len(expected), len(items))
	}

	for i, id := range expected {
		if items[i].ID != id {
			t.Errorf("items[%d] - unexpected id, expected=%q, got=%q\n", i, id, items[i].ID)
		}
	}

	if it.Next() {
		t.Errorf("expected exhausted iterator to stay exhausted\n")
	}

	if b.calls != 2 {
		t.Errorf("unexpected number of requests, expected=%d, got=%d\n", 2, b.calls)
	}
}

func Test_PaginateEndingBefore(t *testing.T) {
	b := &fakeBackend{
		t: t,
		pages: []fakePage{
			{
				query: "ending_before=promo_Z&limit=1",
				body:  `{"data":[{"id":"promo_A","display_name":"A"}],"has_more":true,"url":"/v1/promotion_codes"}`,
			},
			{
				query: "limit=1&starting_after=promo_A",
				body:  `{"data":[],"has_more":false,"url":"/v1/promotion_codes"}`,
			},
		},
	}

	it := Paginate[*testLocation](context.Background(), b, Get("/promotion_codes", Params{"limit": 1, "ending_before": "promo_Z"}))

	n := 0

	for loc, err := range it.All() {
		if err != nil {
			t.Fatal(err)
		}

		if loc.ID != "promo_A" {
			t.Errorf("unexpected id, got=%q\n", loc.ID)
		}
		n++
	}

	if n != 1 {
		t.Errorf("unexpected number of items, expected=%d, got=%d\n", 1, n)
	}
}

func Test_PaginateError(t *testing.T) {
	failed := errors.New("connection reset")

	b := &fakeBackend{
		t: t,
		pages: []fakePage{
			{
				query: "",
				body:  `{"data":[{"id":"promo_A","display_name":"A"}],"has_more":true,"url":"/v1/promotion_codes"}`,
			},
			{
				query: "starting_after=promo_A",
				err:   failed,
			},
		},
	}

	it := Paginate[*testLocation](context.Background(), b, Get("/promotion_codes", nil))

	items, err := Collect(it)

	if !errors.Is(err, failed) {
		t.Fatalf("expected error %q, got=%v\n", failed, err)
	}

	if len(items) != 1 || items[0].ID != "promo_A" {
		t.Errorf("expected items before the error to be kept, got=%v\n", items)
	}

	if it.Next() {
		t.Errorf("expected failed iterator to stay stopped\n")
	}
}

func Test_PaginateIndependent(t *testing.T) {
	pages := []fakePage{
		{
			query: "limit=1",
			body:  `{"data":[{"id":"promo_A","display_name":"A"}],"has_more":false,"url":"/v1/promotion_codes"}`,
		},
		{
			query: "limit=1",
			body:  `{"data":[{"id":"promo_A","display_name":"A"}],"has_more":false,"url":"/v1/promotion_codes"}`,
		},
	}

	b := &fakeBackend{t: t, pages: pages}
	d := Get("/promotion_codes", Params{"limit": 1})

	for i := 0; i < 2; i++ {
		items, err := Collect(Paginate[*testLocation](context.Background(), b, d))

		if err != nil {
			t.Fatal(err)
		}

		if len(items) != 1 {
			t.Errorf("iter[%d] - unexpected number of items, expected=%d, got=%d\n", i, 1, len(items))
		}
	}
}

func Test_PaginateNullItem(t *testing.T) {
	b := &fakeBackend{
		t: t,
		pages: []fakePage{
			{
				query: "",
				body:  `{"data":[{"id":"promo_A","display_name":"A"},null],"has_more":true,"url":"/v1/promotion_codes"}`,
			},
		},
	}

	items, err := Collect(Paginate[*testLocation](context.Background(), b, Get("/promotion_codes", nil)))

	var derr *DecodeError

	if !errors.As(err, &derr) {
		t.Fatalf("expected *DecodeError, got=%T (%v)\n", err, err)
	}

	if derr.Path != "data.1" || !errors.Is(err, ErrNullField) {
		t.Errorf("unexpected decode error, got=%q\n", err)
	}

	if len(items) != 0 {
		t.Errorf("expected no items from a bad page, got=%d\n", len(items))
	}
}
