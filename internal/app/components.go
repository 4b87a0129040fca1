package app

import (
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

// configurableLogger is implemented by loggers whose format and level can be
// changed after construction.
type configurableLogger interface {
	SetJSON(enable bool)
	SetLevel(name string) error
}

// NewComponents creates a new Components struct from dependencies. The logger
// is built before the configuration is read, so its format and level are
// applied here.
func NewComponents(app *App, log ports.Logger, cfg *domain.Config) (*Components, error) {
	if l, ok := log.(configurableLogger); ok && cfg != nil {
		l.SetJSON(cfg.LogFormat == "json")
		if err := l.SetLevel(cfg.LogLevel); err != nil {
			return nil, err
		}
	}

	return &Components{
		App:    app,
		Logger: log,
		Config: cfg,
	}, nil
}
