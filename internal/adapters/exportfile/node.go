package exportfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/screener/internal/adapters/config"
	"go.trai.ch/screener/internal/core/domain"
	"go.trai.ch/screener/internal/core/ports"
)

// NodeID is the graft node of the export store.
const NodeID graft.ID = "adapter.export_store"

func init() {
	graft.Register(graft.Node[ports.ExportStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.ExportStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.ExportDir), nil
		},
	})
}
