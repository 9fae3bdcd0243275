// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cargostep/internal/adapters/cargo"
	_ "go.trai.ch/cargostep/internal/adapters/config"
	_ "go.trai.ch/cargostep/internal/adapters/depfile"
	_ "go.trai.ch/cargostep/internal/adapters/logger"
	_ "go.trai.ch/cargostep/internal/adapters/metadata"
	_ "go.trai.ch/cargostep/internal/adapters/publish"
	_ "go.trai.ch/cargostep/internal/adapters/shell"
	_ "go.trai.ch/cargostep/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/cargostep/internal/app"
	_ "go.trai.ch/cargostep/internal/engine/driver"
)
