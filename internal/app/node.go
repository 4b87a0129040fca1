package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/screener/internal/adapters/api"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/screener/internal/adapters/config"              //nolint:depguard // Wired in app layer
	"go.trai.ch/screener/internal/adapters/exportfile"          //nolint:depguard // Wired in app layer
	"go.trai.ch/screener/internal/adapters/logger"              //nolint:depguard // Wired in app layer
	"go.trai.ch/screener/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			api.NodeID,
			exportfile.NodeID,
			logger.NodeID,
			progrock.NodeID,
			config.ConfigNodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	service, err := graft.Dep[ports.AnalysisService](ctx)
	if err != nil {
		return nil, err
	}

	exports, err := graft.Dep[ports.ExportStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return New(service, exports, log, telemetry, cfg), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, cfg)
}
