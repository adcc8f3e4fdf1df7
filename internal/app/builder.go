package app

import (
	"go.trai.ch/views/internal/core/domain"
	"go.trai.ch/views/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Settings  *domain.Settings
	Telemetry ports.Telemetry
}

// Close flushes telemetry.
func (c *Components) Close() error {
	if c.Telemetry == nil {
		return nil
	}
	return c.Telemetry.Close()
}
