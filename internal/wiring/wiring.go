// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/views/internal/adapters/config"
	_ "go.trai.ch/views/internal/adapters/engine"
	_ "go.trai.ch/views/internal/adapters/freshness"
	_ "go.trai.ch/views/internal/adapters/fs"
	_ "go.trai.ch/views/internal/adapters/logger"
	_ "go.trai.ch/views/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/views/internal/app"
	_ "go.trai.ch/views/internal/engine/plugins"
	_ "go.trai.ch/views/internal/engine/resolver"
)
