package engine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/views/internal/adapters/config"
	"go.trai.ch/views/internal/adapters/logger"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
)

// NodeID is the unique identifier for the engine Graft node.
const NodeID graft.ID = "adapter.engine"

func init() {
	graft.Register(graft.Node[ports.Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Engine, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			e, err := NewForDialect(settings.Engine)
			if err != nil {
				return nil, err
			}
			log.Debug("template engine ready", "dialect", e.Dialect(), "model_type", string(settings.ModelType))
			return e, nil
		},
	})
}
