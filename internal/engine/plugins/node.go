package plugins

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/views/internal/adapters/config"
	"go.trai.ch/views/internal/adapters/engine"
	"go.trai.ch/views/internal/adapters/freshness"
	"go.trai.ch/views/internal/adapters/fs"
	"go.trai.ch/views/internal/adapters/logger"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
)

// NodeID is the unique identifier for the plugin pipeline Graft node.
const NodeID graft.ID = "engine.plugins"

func init() {
	graft.Register(graft.Node[Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SettingsNodeID,
			engine.NodeID,
			fs.FileSystemNodeID,
			freshness.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (Pipeline, error) {
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
			tracker, err := graft.Dep[ports.FreshnessTracker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return Build(settings.Plugins, settings.LayoutPlugins, Deps{
				Engine:    eng,
				FS:        fileSystem,
				Freshness: tracker,
				Logger:    log,
				ModelType: settings.ModelType,
			})
		},
	})
}
