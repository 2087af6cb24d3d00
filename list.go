package stripeapi

import (
	"context"
	"encoding/json"
	"iter"
	"reflect"
	"strconv"
)

// List is a single page of objects returned from a list endpoint of the
// Stripe API.
type List[T any] struct {
	Data    []T
	HasMore bool
	URL     string
}

// ListParams are the pagination parameters accepted by every list endpoint.
// These are embedded in the parameters of list requests.
type ListParams struct {
	EndingBefore  *string  `form:"ending_before"`
	Expand        []string `form:"expand"`
	Limit         *int64   `form:"limit"`
	StartingAfter *string  `form:"starting_after"`
}

// Iter iterates over the objects of a list endpoint, requesting the next page
// of objects once the current page has been consumed. Pages are requested
// with the starting_after parameter set to the ID of the last object of the
// previous page. An Iter is not safe for concurrent use, and each Iter keeps
// its own cursor.
//
//     it := stripeapi.Paginate[*product.PromotionCode](ctx, client, req.Describe())
//
//     for it.Next() {
//         code := it.Current()
//     }
//
//     if err := it.Err(); err != nil {
//         // Handle error.
//     }
type Iter[T Object] struct {
	ctx  context.Context
	b    Backend
	desc Description
	form *Form
	opts []RequestOption

	page    *List[T]
	buf     []T
	cur     T
	cursor  string
	started bool
	err     error
}

// Paginate returns an Iter over the list endpoint described by the given
// Description. No request is sent until the first call to Next.
func Paginate[T Object](ctx context.Context, b Backend, d Description, opts ...RequestOption) *Iter[T] {
	return &Iter[T]{
		ctx:  ctx,
		b:    b,
		desc: d,
		form: d.Form(),
		opts: opts,
	}
}

// Collect consumes the given Iter and returns all of the objects it yields.
// The objects yielded before an error are returned along with the error.
func Collect[T Object](it *Iter[T]) ([]T, error) {
	items := make([]T, 0)

	for it.Next() {
		items = append(items, it.Current())
	}
	return items, it.Err()
}

func (l *List[T]) UnmarshalJSON(data []byte) error {
	var l1 List[T]

	err := DecodeObject(data,
		Required("data", &l1.Data),
		Required("has_more", &l1.HasMore),
		Required("url", &l1.URL),
	)

	if err != nil {
		return err
	}

	for i, item := range l1.Data {
		if isNil(item) {
			return &DecodeError{Path: "data." + strconv.Itoa(i), Err: ErrNullField}
		}
	}

	(*l) = l1
	return nil
}

// isNil reports whether the given value is a nil pointer, map, slice, or
// interface. This is how a null element of a list decodes.
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func (l List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Object  string `json:"object"`
		Data    []T    `json:"data"`
		HasMore bool   `json:"has_more"`
		URL     string `json:"url"`
	}{
		Object:  "list",
		Data:    l.Data,
		HasMore: l.HasMore,
		URL:     l.URL,
	})
}

func (it *Iter[T]) fetch() bool {
	f := it.form.Clone()

	if it.started {
		f.Del("ending_before")
		f.Set("starting_after", it.cursor)
	}

	d := it.desc
	d.Params = f

	body, err := it.b.Call(it.ctx, d, it.opts...)

	if err != nil {
		it.err = err
		return false
	}

	page, err := decodeResponse[List[T]](body)

	if err != nil {
		it.err = err
		return false
	}

	it.started = true
	it.page = page
	it.buf = page.Data

	if n := len(page.Data); n > 0 {
		it.cursor = page.Data[n-1].GetID()
	}
	return true
}

// Next advances the Iter to the next object, requesting the next page if
// needed. This returns false once every object has been yielded, or if a
// request fails.
func (it *Iter[T]) Next() bool {
	if it.err != nil {
		return false
	}

	for len(it.buf) == 0 {
		if it.started && !it.page.HasMore {
			return false
		}

		if !it.fetch() {
			return false
		}

		// An empty page leaves no cursor to continue from.
		if len(it.buf) == 0 {
			return false
		}
	}

	it.cur = it.buf[0]
	it.buf = it.buf[1:]
	return true
}

// Current returns the object the Iter is on.
func (it *Iter[T]) Current() T { return it.cur }

// Err returns the error, if any, that stopped the Iter.
func (it *Iter[T]) Err() error { return it.err }

// Page returns the most recently requested page, or nil if no page has been
// requested yet.
func (it *Iter[T]) Page() *List[T] { return it.page }

// All returns the remaining objects of the Iter as a sequence. If a request
// fails then the error is yielded as the final element of the sequence.
func (it *Iter[T]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.Next() {
			if !yield(it.Current(), nil) {
				return
			}
		}

		if err := it.Err(); err != nil {
			var zero T
			yield(zero, err)
		}
	}
}
