// Package poller keeps the analysis progress of a job current while the
// Analysis Service works through it.
package poller

import (
	"context"
	"sync"
	"time"

	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/screener/internal/engine/querycache"
)

// State is the watching state of a Poller.
type State uint8

const (
	// Idle means the view is not watching the job.
	Idle State = iota
	// WatchingInactive means the job is watched but no refetch is scheduled.
	WatchingInactive
	// WatchingActive means a refetch is scheduled every interval.
	WatchingActive
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case WatchingInactive:
		return "watching"
	case WatchingActive:
		return "polling"
	default:
		return "unknown"
	}
}

// StatusSource loads the analysis progress of a job.
type StatusSource interface {
	AnalysisStatus(ctx context.Context, jobID int64) (*domain.AnalysisProgress, error)
}

// Update is handed to the update callback after every fetch completion.
type Update struct {
	State    State
	Progress *domain.AnalysisProgress
	// Err is the error of the fetch, if it failed. Progress is then the last
	// good snapshot.
	Err error
}

// Poller refetches the analysis status of one job every interval while the
// server reports it in progress.
type Poller struct {
	cache    *querycache.Cache
	key      domain.Key
	fetcher  querycache.Fetcher
	interval time.Duration
	logger   ports.Logger
	onUpdate func(Update)

	mu          sync.Mutex
	state       State
	gen         uint64
	timer       *time.Timer
	unsubscribe func()
	last        *domain.AnalysisProgress
	scheduled   int
}

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the refetch interval.
func WithInterval(d time.Duration) Option {
	return func(p *Poller) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithLogger sets the poller logger.
func WithLogger(l ports.Logger) Option {
	return func(p *Poller) { p.logger = l }
}

// WithUpdates registers fn to receive every fetch completion while watching.
func WithUpdates(fn func(Update)) Option {
	return func(p *Poller) { p.onUpdate = fn }
}

// New creates an idle Poller for jobID.
func New(cache *querycache.Cache, source StatusSource, jobID int64, opts ...Option) *Poller {
	p := &Poller{
		cache:    cache,
		key:      domain.AnalysisStatusKey(jobID),
		interval: domain.DefaultPollInterval,
		fetcher: querycache.Typed(func(ctx context.Context) (*domain.AnalysisProgress, error) {
			return source.AnalysisStatus(ctx, jobID)
		}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Enable starts watching the job. It is a no-op returning false when the job
// has no candidates.
func (p *Poller) Enable(candidateCount int) bool {
	if candidateCount <= 0 {
		return false
	}

	p.mu.Lock()
	if p.state != Idle {
		p.mu.Unlock()
		return true
	}
	p.state = WatchingInactive
	p.gen++
	gen := p.gen
	p.mu.Unlock()

	p.debug("analysis watch enabled", "key", p.key)
	unsubscribe := p.cache.Observe(p.key, p.fetcher, querycache.Policy{}, func(e domain.Entry) {
		p.handle(gen, e)
	})

	p.mu.Lock()
	if p.gen != gen {
		// Disabled while subscribing.
		p.mu.Unlock()
		unsubscribe()
		return true
	}
	p.unsubscribe = unsubscribe
	p.mu.Unlock()
	return true
}

// Disable stops watching. A pending tick is cancelled and results of fetches
// still in flight are ignored.
func (p *Poller) Disable() {
	p.mu.Lock()
	if p.state == Idle {
		p.mu.Unlock()
		return
	}
	p.state = Idle
	p.gen++
	p.stopTimerLocked()
	unsubscribe := p.unsubscribe
	p.unsubscribe = nil
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	p.debug("analysis watch disabled", "key", p.key)
}

// State returns the current state.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Progress returns the last good snapshot, nil before the first success.
func (p *Poller) Progress() *domain.AnalysisProgress {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last
}

// IsAnalyzing reports whether the last snapshot is in progress.
func (p *Poller) IsAnalyzing() bool {
	return p.Progress().IsAnalyzing()
}

// IsComplete reports whether the last snapshot is complete or has no candidates.
func (p *Poller) IsComplete() bool {
	return p.Progress().IsComplete()
}

// Scheduled returns how many refetches were scheduled since creation.
func (p *Poller) Scheduled() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scheduled
}

// handle decides the next state after a fetch of the status entry.
func (p *Poller) handle(gen uint64, e domain.Entry) {
	if e.Status == domain.StatusLoading || e.Status == domain.StatusIdle {
		return
	}

	p.mu.Lock()
	if p.gen != gen || p.state == Idle {
		p.mu.Unlock()
		return
	}

	var fetchErr error
	if e.Status == domain.StatusError {
		fetchErr = e.Err
	}
	if snapshot, ok := e.Value.(*domain.AnalysisProgress); ok && snapshot != nil {
		p.last = snapshot
	}

	if p.last.IsAnalyzing() {
		p.state = WatchingActive
		p.scheduleLocked(gen)
	} else {
		p.state = WatchingInactive
		p.stopTimerLocked()
	}
	update := Update{State: p.state, Progress: p.last, Err: fetchErr}
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if fetchErr != nil {
		p.warn("analysis status fetch failed", "key", p.key, "error", fetchErr.Error())
	}
	if onUpdate != nil {
		onUpdate(update)
	}
}

// scheduleLocked arms the single pending tick, replacing any earlier one.
func (p *Poller) scheduleLocked(gen uint64) {
	p.stopTimerLocked()
	p.scheduled++
	p.timer = time.AfterFunc(p.interval, func() { p.tick(gen) })
	p.debug("analysis refetch scheduled", "key", p.key, "in", p.interval.String())
}

func (p *Poller) stopTimerLocked() {
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *Poller) tick(gen uint64) {
	p.mu.Lock()
	if p.gen != gen || p.state != WatchingActive {
		p.mu.Unlock()
		return
	}
	p.timer = nil
	p.mu.Unlock()

	p.cache.EnsureFresh(p.key, nil, querycache.Policy{ForceRefetch: true})
}

func (p *Poller) debug(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Debug(msg, args...)
	}
}

func (p *Poller) warn(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}
