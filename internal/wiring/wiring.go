// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/grind/internal/adapters/config"
	_ "go.trai.ch/grind/internal/adapters/fs"
	_ "go.trai.ch/grind/internal/adapters/logger"
	_ "go.trai.ch/grind/internal/adapters/shell"
	_ "go.trai.ch/grind/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/grind/internal/app"
	_ "go.trai.ch/grind/internal/engine/pipeline"
)
