// Package app implements the application layer for screener.
package app

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/screener/internal/engine/mutation"
	"go.trai.ch/screener/internal/engine/querycache"
)

// App wires the query cache and mutation dispatcher to the Analysis Service.
type App struct {
	api        ports.AnalysisService
	exports    ports.ExportStore
	logger     ports.Logger
	telemetry  ports.Telemetry
	cfg        *domain.Config
	cache      *querycache.Cache
	mutations  *mutation.Mutations
	out        io.Writer
	teaOptions []tea.ProgramOption
	refresh    bool
}

// New creates a new App instance.
func New(
	api ports.AnalysisService,
	exports ports.ExportStore,
	log ports.Logger,
	telemetry ports.Telemetry,
	cfg *domain.Config,
) *App {
	if cfg == nil {
		cfg = domain.DefaultConfig()
	}

	cache := querycache.New(
		querycache.WithStaleTime(cfg.StaleTime),
		querycache.WithLogger(log),
		querycache.WithTelemetry(telemetry),
	)
	dispatcher := mutation.NewDispatcher(cache,
		mutation.WithLogger(log),
		mutation.WithTelemetry(telemetry),
		mutation.WithAwaitRefetch(true),
	)

	return &App{
		api:       api,
		exports:   exports,
		logger:    log,
		telemetry: telemetry,
		cfg:       cfg,
		cache:     cache,
		mutations: mutation.NewMutations(dispatcher, api),
		out:       os.Stdout,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput sets where plain progress output is written.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// WithRefresh makes every query bypass fresh cache entries.
func (a *App) WithRefresh(enable bool) *App {
	a.refresh = enable
	return a
}

// Config returns the configuration the App runs with.
func (a *App) Config() *domain.Config {
	return a.cfg
}

// Cache returns the query cache.
func (a *App) Cache() *querycache.Cache {
	return a.cache
}

// Close releases the cache and flushes telemetry.
func (a *App) Close() error {
	a.cache.Close()
	if a.telemetry != nil {
		return a.telemetry.Close()
	}
	return nil
}

func (a *App) policy() querycache.Policy {
	return querycache.Policy{ForceRefetch: a.refresh}
}

func query[T any](ctx context.Context, a *App, key domain.Key, load func(ctx context.Context) (T, error)) (T, error) {
	return querycache.Get(ctx, a.cache, key, load, a.policy())
}
