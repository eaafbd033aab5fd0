// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/quarrydev/quarry/internal/adapters/config"
	_ "github.com/quarrydev/quarry/internal/adapters/fs"
	_ "github.com/quarrydev/quarry/internal/adapters/logger"
	_ "github.com/quarrydev/quarry/internal/adapters/telemetry/progrock"
	_ "github.com/quarrydev/quarry/internal/adapters/versionfile"
	// Register app and engine nodes.
	_ "github.com/quarrydev/quarry/internal/app"
	_ "github.com/quarrydev/quarry/internal/engine/skip"
)
