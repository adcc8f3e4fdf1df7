package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/views/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/views/internal/adapters/engine"             //nolint:depguard // Wired in app layer
	"go.trai.ch/views/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/views/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/views/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
	"go.trai.ch/views/internal/engine/plugins"
	"go.trai.ch/views/internal/engine/resolver"
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
			resolver.NodeID,
			engine.NodeID,
			fs.FileSystemNodeID,
			fs.WalkerNodeID,
			fs.HasherNodeID,
			plugins.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	res, err := graft.Dep[*resolver.Resolver](ctx)
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
	walker, err := graft.Dep[*fs.Walker](ctx)
	if err != nil {
		return nil, err
	}
	hasher, err := graft.Dep[*fs.Hasher](ctx)
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

	return New(res, eng, fileSystem, pipeline, walker, hasher, log), nil
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
	settings, err := graft.Dep[*domain.Settings](ctx)
	if err != nil {
		return nil, err
	}
	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Settings:  settings,
		Telemetry: tel,
	}, nil
}
