// Package mutation runs state-changing calls against the Analysis Service and
// invalidates the cache entries they affect.
package mutation

import (
	"context"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/screener/internal/engine/querycache"
	"go.trai.ch/zerr"
)

// Invalidator marks cache entries stale.
type Invalidator interface {
	Invalidate(prefix domain.Key) *querycache.Invalidation
}

// Dispatcher executes mutations. It never retries a failed call and never
// invalidates anything when a call fails.
type Dispatcher struct {
	cache        Invalidator
	logger       ports.Logger
	telemetry    ports.Telemetry
	awaitRefetch bool
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher logger.
func WithLogger(l ports.Logger) Option {
	return func(d *Dispatcher) { d.logger = l }
}

// WithTelemetry records every mutation as a vertex.
func WithTelemetry(t ports.Telemetry) Option {
	return func(d *Dispatcher) { d.telemetry = t }
}

// WithAwaitRefetch makes typed mutations wait for the refetch of observed
// entries before returning.
func WithAwaitRefetch(enable bool) Option {
	return func(d *Dispatcher) { d.awaitRefetch = enable }
}

// NewDispatcher creates a Dispatcher invalidating entries of cache.
func NewDispatcher(cache Invalidator, opts ...Option) *Dispatcher {
	d := &Dispatcher{cache: cache}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch runs call. On success every prefix declared for kind is invalidated
// and the payload is returned with the combined invalidation. On failure the
// error is returned unchanged and the cache is left untouched.
func Dispatch[T any](ctx context.Context, d *Dispatcher, kind Kind, scope Scope, call func(ctx context.Context) (T, error)) (T, *querycache.Invalidation, error) {
	var zero T
	prefixes, ok := Invalidations(kind, scope)
	if !ok {
		return zero, nil, zerr.With(domain.ErrUnknownMutation, "kind", string(kind))
	}

	var vertex ports.Vertex
	if d.telemetry != nil {
		ctx, vertex = d.telemetry.Record(ctx, "mutation "+string(kind))
	}

	result, err := call(ctx)
	if vertex != nil {
		vertex.Complete(err)
	}
	if err != nil {
		d.debug("mutation failed", "kind", string(kind), "error", err.Error())
		return zero, nil, err
	}

	inv := &querycache.Invalidation{}
	for _, prefix := range prefixes {
		inv.Merge(d.cache.Invalidate(prefix))
	}
	d.debug("mutation succeeded", "kind", string(kind), "invalidated", len(inv.Keys), "refetched", len(inv.Refetched))
	return result, inv, nil
}

// settle waits for refetches when the dispatcher is configured to. Refetch
// failures stay in the cache entries and are only logged here.
func (d *Dispatcher) settle(ctx context.Context, inv *querycache.Invalidation) {
	if !d.awaitRefetch || inv == nil {
		return
	}
	if err := inv.Wait(ctx); err != nil && d.logger != nil {
		d.logger.Warn("refetch after mutation failed", "error", err.Error())
	}
}

func (d *Dispatcher) debug(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}
