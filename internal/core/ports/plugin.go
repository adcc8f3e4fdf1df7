package ports

import (
	"context"

	"go.trai.ch/views/internal/core/domain"
)

// Plugin transforms template source before it is compiled.
// Plugins may compile dependent templates as a side effect.
//
//go:generate mockgen -source=plugin.go -destination=mocks/mock_plugin.go -package=mocks
type Plugin interface {
	// Name returns the configuration name of the plugin.
	Name() string
	// Execute returns the transformed source.
	Execute(ctx context.Context, req *domain.Request, params domain.Params, source string) (string, error)
}
