package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/views/internal/adapters/logger"
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	NodeID         graft.ID = "adapter.config_loader"
	SettingsNodeID graft.ID = "adapter.settings"
)

// levelSetter is implemented by loggers whose verbosity can change after construction.
type levelSetter interface {
	SetLevel(level domain.LogLevel)
	SetJSON(enabled bool)
}

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
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, zerr.Wrap(err, "failed to get working directory")
			}
			settings, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			if ls, ok := log.(levelSetter); ok {
				ls.SetLevel(settings.LogLevel)
				ls.SetJSON(settings.LogFormat == domain.LogFormatJSON)
			}
			return settings, nil
		},
	})
}
