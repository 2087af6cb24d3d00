package stripeapi

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// RetrieveFunc retrieves the object with the given ID.
type RetrieveFunc[T any] func(ctx context.Context, id string) (T, error)

// RetrieveAll calls fn for each of the given IDs concurrently, and returns the
// retrieved objects in the same order as the IDs. At most width calls are made
// at once, if width is zero or less then runtime.GOMAXPROCS(0)+10 is used.
//
// If errh is nil then the first error cancels the remaining calls and is
// returned. Otherwise each error is passed to errh along with the ID that
// caused it, and the object for that ID is left as the zero value in the
// returned slice. errh is never called concurrently.
func RetrieveAll[T any](ctx context.Context, ids []string, width int, fn RetrieveFunc[T], errh func(string, error)) ([]T, error) {
	if width <= 0 {
		width = runtime.GOMAXPROCS(0) + 10
	}

	objs := make([]T, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(width)

	var mu sync.Mutex

	for i, id := range ids {
		g.Go(func() error {
			obj, err := fn(ctx, id)

			if err != nil {
				if errh == nil {
					return err
				}

				mu.Lock()
				errh(id, err)
				mu.Unlock()
				return nil
			}

			objs[i] = obj
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return objs, nil
}
