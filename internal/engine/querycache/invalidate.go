package querycache

import (
	"context"

	"go.trai.ch/screener/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Invalidation reports the effect of one Invalidate call.
type Invalidation struct {
	// Keys are the entries marked stale.
	Keys []domain.Key
	// Refetched are the observed keys whose refetch was started.
	Refetched []domain.Key

	pending []<-chan Result
}

// Wait blocks until every refetch started by the invalidation finished. It
// returns the first fetch error, or ctx's error.
func (inv *Invalidation) Wait(ctx context.Context) error {
	if inv == nil || len(inv.pending) == 0 {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, ch := range inv.pending {
		g.Go(func() error {
			select {
			case r := <-ch:
				return r.Err
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	return g.Wait()
}

// Merge folds other into inv.
func (inv *Invalidation) Merge(other *Invalidation) {
	if other == nil {
		return
	}
	inv.Keys = append(inv.Keys, other.Keys...)
	inv.Refetched = append(inv.Refetched, other.Refetched...)
	inv.pending = append(inv.pending, other.pending...)
}

// Invalidate marks every entry whose key starts with prefix as stale. Entries
// with at least one subscriber are refetched immediately. An entry whose fetch
// is in flight stays stale once that fetch completes and, if observed, is
// fetched once more.
func (c *Cache) Invalidate(prefix domain.Key) *Invalidation {
	inv := &Invalidation{}
	var refetch []domain.Key

	c.mu.Lock()
	for _, s := range c.slots {
		if !s.entry.Key.HasPrefix(prefix) {
			continue
		}
		s.entry.Stale = true
		inv.Keys = append(inv.Keys, s.entry.Key)

		if s.inflight {
			s.dirty = true
			continue
		}
		if len(s.subs) > 0 && s.fetcher != nil {
			refetch = append(refetch, s.entry.Key)
		}
	}
	c.mu.Unlock()

	c.debug("invalidated", "prefix", prefix, "entries", len(inv.Keys), "refetch", len(refetch))

	for _, key := range refetch {
		inv.Refetched = append(inv.Refetched, key)
		inv.pending = append(inv.pending, c.EnsureFresh(key, nil, Policy{ForceRefetch: true}))
	}
	return inv
}
