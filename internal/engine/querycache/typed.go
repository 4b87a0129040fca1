package querycache

import (
	"context"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/zerr"
)

// Value extracts the typed value of an entry. ok is false when the entry has
// no value yet.
func Value[T any](e domain.Entry) (v T, ok bool, err error) {
	if !e.HasValue() {
		return v, false, nil
	}
	v, ok = e.Value.(T)
	if !ok {
		return v, false, zerr.With(domain.ErrUnexpectedValue, "key", e.Key.Display())
	}
	return v, true, nil
}

// Typed adapts a typed loader to a Fetcher.
func Typed[T any](load func(ctx context.Context) (T, error)) Fetcher {
	return func(ctx context.Context) (any, error) {
		return load(ctx)
	}
}

// Get fetches key if needed and returns its typed value. When the fetch fails
// the error is returned together with the last good value, if any.
func Get[T any](ctx context.Context, c *Cache, key domain.Key, load func(ctx context.Context) (T, error), policy Policy) (T, error) {
	entry, fetchErr := c.Fetch(ctx, key, Typed(load), policy)
	v, _, err := Value[T](entry)
	if err != nil {
		return v, err
	}
	return v, fetchErr
}
