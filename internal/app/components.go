package app

import (
	"github.com/quarrydev/quarry/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the
// CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	Telemetry    ports.Telemetry
	ConfigLoader ports.ConfigLoader
	Store        ports.VersionStore
	Digester     ports.Digester
	Scanner      ports.ArtifactScanner
}
