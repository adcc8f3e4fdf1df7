package ports

import "go.trai.ch/views/internal/core/domain"

// ConfigLoader defines the interface for loading the resolver settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file from the given working directory.
	// A missing file yields the defaults.
	Load(cwd string) (*domain.Settings, error)
}
