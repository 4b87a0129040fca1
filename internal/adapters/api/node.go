package api

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/screener/internal/adapters/config"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
)

// NodeID is the graft node of the Analysis Service client.
const NodeID graft.ID = "adapter.analysis_service"

func init() {
	graft.Register(graft.Node[ports.AnalysisService]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.AnalysisService, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.APIURL)
		},
	})
}
