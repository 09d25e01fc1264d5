// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/gant/internal/adapters/config"
	_ "go.trai.ch/gant/internal/adapters/logger"
	_ "go.trai.ch/gant/internal/adapters/shell"
	_ "go.trai.ch/gant/internal/adapters/store"
	_ "go.trai.ch/gant/internal/adapters/telemetry"
	_ "go.trai.ch/gant/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/gant/internal/app"
	_ "go.trai.ch/gant/internal/engine/registry"
	_ "go.trai.ch/gant/internal/engine/step"
)
