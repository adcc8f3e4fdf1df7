package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/views/internal/adapters/config"
	"go.trai.ch/views/internal/adapters/engine"
	"go.trai.ch/views/internal/adapters/fs"
	"go.trai.ch/views/internal/adapters/logger"
	"go.trai.ch/views/internal/adapters/telemetry/progrock"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/views/internal/engine/plugins"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			engine.NodeID,
			fs.FileSystemNodeID,
			plugins.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}
			eng, err := graft.Dep[ports.Engine](ctx)
			if err != nil {
				return nil, err
			}
			fileSystem, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			pipeline, err := graft.Dep[plugins.Pipeline](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(eng, fileSystem, pipeline, log, tel, OptionsFromSettings(settings)), nil
		},
	})
}
