package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/screener/internal/adapters/logger"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// NodeID is the graft node of the config loader.
	NodeID graft.ID = "adapter.config_loader"
	// ConfigNodeID is the graft node of the resolved configuration.
	ConfigNodeID graft.ID = "adapter.config"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get working directory")
			}
			return NewLoader(log, cwd), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load()
		},
	})
}
