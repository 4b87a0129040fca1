// Package querycache implements the keyed store of server-derived state shared by
// every view of the client.
package querycache

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads the value of one key from the Analysis Service.
type Fetcher func(ctx context.Context) (any, error)

// Listener receives every transition of an observed entry.
type Listener func(domain.Entry)

// Policy controls when EnsureFresh issues a fetch.
type Policy struct {
	// StaleTime overrides the cache default when positive.
	StaleTime time.Duration
	// ForceRefetch fetches even when the entry is fresh.
	ForceRefetch bool
}

// Result is the outcome of an EnsureFresh call.
type Result struct {
	Entry domain.Entry
	// Err is the fetch error. The entry still carries the last good value.
	Err error
	// Fetched is false when the entry was served without a fetch.
	Fetched bool
	// Changed reports whether the fetch delivered a different payload.
	Changed bool
}

type slot struct {
	entry     domain.Entry
	fetcher   Fetcher
	staleTime time.Duration
	subs      map[uint64]Listener
	// seq is the sequence number of the last issued fetch, applied the one of
	// the last fetch whose result was stored.
	seq      uint64
	applied  uint64
	inflight bool
	// dirty marks an invalidation that landed while a fetch was in flight.
	dirty bool
}

// Cache is the query cache. All methods are safe for concurrent use.
type Cache struct {
	mu        sync.Mutex
	slots     map[string]*slot
	group     singleflight.Group
	nextSub   uint64
	staleTime time.Duration
	logger    ports.Logger
	telemetry ports.Telemetry

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// Option configures a Cache.
type Option func(*Cache)

// WithStaleTime sets the default freshness window.
func WithStaleTime(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.staleTime = d
		}
	}
}

// WithLogger sets the logger used for fetch diagnostics.
func WithLogger(l ports.Logger) Option {
	return func(c *Cache) { c.logger = l }
}

// WithTelemetry records every network fetch as a vertex.
func WithTelemetry(t ports.Telemetry) Option {
	return func(c *Cache) { c.telemetry = t }
}

// New creates an empty Cache.
func New(opts ...Option) *Cache {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Cache{
		slots:     make(map[string]*slot),
		staleTime: domain.DefaultStaleTime,
		ctx:       ctx,
		cancel:    cancel,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close cancels the context handed to background fetches. In-flight results
// are still applied if the fetcher returns them.
func (c *Cache) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	c.cancel()
}

// StaleTime returns the default freshness window.
func (c *Cache) StaleTime() time.Duration {
	return c.staleTime
}

// Read returns the current entry of key without side effects.
func (c *Cache) Read(key domain.Key) (domain.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[key.String()]
	if !ok {
		return domain.Entry{Key: key}, false
	}
	return s.entry, true
}

// EnsureFresh starts fetcher for key unless the entry is fresh. At most one
// fetch per key is in flight; concurrent callers join it and receive the same
// result. The returned channel yields exactly one Result.
func (c *Cache) EnsureFresh(key domain.Key, fetcher Fetcher, policy Policy) <-chan Result {
	id := key.String()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ready(Result{Entry: domain.Entry{Key: key}, Err: domain.ErrCacheClosed})
	}

	s := c.slotLocked(key)
	if fetcher != nil {
		s.fetcher = fetcher
	}
	if policy.StaleTime > 0 {
		s.staleTime = policy.StaleTime
	}

	if !s.inflight && !policy.ForceRefetch && s.entry.IsFresh(time.Now(), c.staleTimeOf(s)) {
		entry := s.entry
		c.mu.Unlock()
		c.recordCached(key)
		return ready(Result{Entry: entry})
	}

	if s.fetcher == nil {
		entry := s.entry
		c.mu.Unlock()
		return ready(Result{Entry: entry})
	}

	var listeners []Listener
	var entry domain.Entry
	if !s.inflight {
		s.inflight = true
		s.seq++
		s.entry.Status = domain.StatusLoading
		entry = s.entry
		listeners = listenersOf(s)

		seq, run := s.seq, s.fetcher
		ch := c.group.DoChan(id, func() (any, error) {
			return c.execute(key, s, seq, run), nil
		})
		c.mu.Unlock()

		notify(listeners, entry)
		return relay(ch)
	}

	// Join the fetch already in flight.
	ch := c.group.DoChan(id, func() (any, error) {
		return Result{Entry: domain.Entry{Key: key}}, nil
	})
	c.mu.Unlock()
	return relay(ch)
}

// Fetch is EnsureFresh for callers that need the value before continuing.
func (c *Cache) Fetch(ctx context.Context, key domain.Key, fetcher Fetcher, policy Policy) (domain.Entry, error) {
	select {
	case r := <-c.EnsureFresh(key, fetcher, policy):
		return r.Entry, r.Err
	case <-ctx.Done():
		entry, _ := c.Read(key)
		return entry, ctx.Err()
	}
}

// Observe registers fn as a subscriber of key and ensures the entry is fresh.
// A fresh entry is handed to fn right away; otherwise fn sees the fetch it
// triggers. While at least one subscriber exists, invalidating key refetches
// it immediately. The returned function removes the subscription.
func (c *Cache) Observe(key domain.Key, fetcher Fetcher, policy Policy, fn Listener) (unsubscribe func()) {
	if fn == nil {
		fn = func(domain.Entry) {}
	}

	c.mu.Lock()
	s := c.slotLocked(key)
	c.nextSub++
	subID := c.nextSub
	s.subs[subID] = fn
	if fetcher != nil {
		s.fetcher = fetcher
	}
	if policy.StaleTime > 0 {
		s.staleTime = policy.StaleTime
	}
	fresh := !policy.ForceRefetch && !s.inflight && s.entry.IsFresh(time.Now(), c.staleTimeOf(s))
	entry := s.entry
	c.mu.Unlock()

	if fresh {
		c.recordCached(key)
		fn(entry)
	} else {
		c.EnsureFresh(key, fetcher, policy)
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			if cur, ok := c.slots[key.String()]; ok {
				delete(cur.subs, subID)
			}
		})
	}
}

// Subscribers returns the number of subscribers of key.
func (c *Cache) Subscribers(key domain.Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[key.String()]
	if !ok {
		return 0
	}
	return len(s.subs)
}

// Evict removes every entry whose key starts with prefix. Subscriptions of
// removed entries are dropped. Results of fetches in flight for removed
// entries are discarded.
func (c *Cache) Evict(prefix domain.Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for id, s := range c.slots {
		if !s.entry.Key.HasPrefix(prefix) {
			continue
		}
		delete(c.slots, id)
		c.group.Forget(id)
		n++
	}
	return n
}

func (c *Cache) slotLocked(key domain.Key) *slot {
	id := key.String()
	s, ok := c.slots[id]
	if !ok {
		s = &slot{
			entry: domain.Entry{Key: domain.NewKey(key...), Status: domain.StatusIdle},
			subs:  make(map[uint64]Listener),
		}
		c.slots[id] = s
	}
	return s
}

func (c *Cache) staleTimeOf(s *slot) time.Duration {
	if s.staleTime > 0 {
		return s.staleTime
	}
	return c.staleTime
}

// execute runs one fetch and applies its outcome. It runs inside the
// singleflight call, so every joined caller sees the applied result.
func (c *Cache) execute(key domain.Key, s *slot, seq uint64, fetcher Fetcher) Result {
	ctx := c.ctx
	var vertex ports.Vertex
	if c.telemetry != nil {
		ctx, vertex = c.telemetry.Record(ctx, "fetch "+key.Display())
	}
	c.debug("fetch started", "key", key, "seq", seq)

	value, err := fetcher(ctx)
	if vertex != nil {
		vertex.Complete(err)
	}

	c.mu.Lock()
	id := key.String()
	if c.slots[id] == s {
		c.group.Forget(id)
	}
	res, listeners, followUp := c.applyLocked(s, seq, value, err)
	observed := len(s.subs) > 0
	c.mu.Unlock()

	if err != nil {
		c.warn("fetch failed", "key", key, "error", err.Error())
	} else {
		c.debug("fetch finished", "key", key, "seq", seq, "changed", res.Changed)
	}

	notify(listeners, res.Entry)

	if followUp && observed {
		c.debug("refetching entry invalidated during fetch", "key", key)
		c.EnsureFresh(key, nil, Policy{ForceRefetch: true})
	}
	return res
}

func (c *Cache) applyLocked(s *slot, seq uint64, value any, err error) (Result, []Listener, bool) {
	s.inflight = false
	if seq < s.applied || c.slots[s.entry.Key.String()] != s {
		c.debug("discarding out-of-order response", "key", s.entry.Key, "seq", seq)
		return Result{Entry: s.entry, Fetched: true}, nil, false
	}
	s.applied = seq

	dirty := s.dirty
	s.dirty = false

	if err != nil {
		s.entry.Status = domain.StatusError
		s.entry.Err = err
		if dirty {
			s.entry.Stale = true
		}
		return Result{Entry: s.entry, Err: err, Fetched: true}, listenersOf(s), dirty
	}

	fp, ok := fingerprint(value)
	changed := !ok || !s.entry.HasValue() || fp != s.entry.Fingerprint
	if changed {
		s.entry.Value = value
	}
	s.entry.Fingerprint = fp
	s.entry.Status = domain.StatusSuccess
	s.entry.Err = nil
	s.entry.UpdatedAt = time.Now()
	s.entry.Stale = dirty

	return Result{Entry: s.entry, Fetched: true, Changed: changed}, listenersOf(s), dirty
}

func (c *Cache) recordCached(key domain.Key) {
	if c.telemetry == nil {
		return
	}
	_, v := c.telemetry.Record(c.ctx, "fetch "+key.Display())
	v.Cached()
	v.Complete(nil)
}

func (c *Cache) debug(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Debug(msg, args...)
	}
}

func (c *Cache) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}

// fingerprint hashes the JSON encoding of v. ok is false when v cannot be encoded.
func fingerprint(v any) (uint64, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return 0, false
	}
	return xxhash.Sum64(data), true
}

func listenersOf(s *slot) []Listener {
	if len(s.subs) == 0 {
		return nil
	}
	out := make([]Listener, 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

func notify(listeners []Listener, entry domain.Entry) {
	for _, fn := range listeners {
		fn(entry)
	}
}

func ready(r Result) <-chan Result {
	ch := make(chan Result, 1)
	ch <- r
	close(ch)
	return ch
}

func relay(in <-chan singleflight.Result) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		r := <-in
		res, _ := r.Val.(Result)
		out <- res
	}()
	return out
}
