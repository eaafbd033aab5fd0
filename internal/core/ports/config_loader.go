package ports

import "github.com/quarrydev/quarry/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load parses the configuration file at path and returns the
	// project: its default platform set and pinned dependencies.
	Load(path string) (*domain.Project, error)
}
