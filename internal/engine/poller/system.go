package poller

import (
	"context"
	"time"

	"github.com/lthibault/jitterbug/v2"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/screener/internal/engine/querycache"
)

// SystemSource loads the global system status.
type SystemSource interface {
	SystemStatus(ctx context.Context) (*domain.SystemStatus, error)
}

// SystemWatcher refreshes the system status on a fixed interval, independent
// of any job being watched.
type SystemWatcher struct {
	cache    *querycache.Cache
	fetcher  querycache.Fetcher
	interval time.Duration
	jitter   time.Duration
	logger   ports.Logger
	onUpdate func(domain.Entry)
}

// SystemOption configures a SystemWatcher.
type SystemOption func(*SystemWatcher)

// WithSystemInterval sets the refresh interval.
func WithSystemInterval(d time.Duration) SystemOption {
	return func(w *SystemWatcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithJitter sets the standard deviation of the tick jitter.
func WithJitter(stdev time.Duration) SystemOption {
	return func(w *SystemWatcher) { w.jitter = stdev }
}

// WithSystemLogger sets the watcher logger.
func WithSystemLogger(l ports.Logger) SystemOption {
	return func(w *SystemWatcher) { w.logger = l }
}

// WithSystemUpdates registers fn to receive every transition of the status entry.
func WithSystemUpdates(fn func(domain.Entry)) SystemOption {
	return func(w *SystemWatcher) { w.onUpdate = fn }
}

// NewSystemWatcher creates a SystemWatcher.
func NewSystemWatcher(cache *querycache.Cache, source SystemSource, opts ...SystemOption) *SystemWatcher {
	w := &SystemWatcher{
		cache:    cache,
		interval: domain.DefaultStatusInterval,
		jitter:   30 * time.Millisecond,
		fetcher: querycache.Typed(func(ctx context.Context) (*domain.SystemStatus, error) {
			return source.SystemStatus(ctx)
		}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run observes the system status and forces a refetch on every tick until ctx
// is done.
func (w *SystemWatcher) Run(ctx context.Context) error {
	key := domain.SystemStatusKey()
	unsubscribe := w.cache.Observe(key, w.fetcher, querycache.Policy{}, w.onUpdate)
	defer unsubscribe()

	ticker := jitterbug.New(w.interval, &jitterbug.Norm{Stdev: w.jitter, Mean: 0})
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if w.logger != nil {
			w.logger.Debug("refreshing system status")
		}
		w.cache.EnsureFresh(key, nil, querycache.Policy{ForceRefetch: true})
	}
}
