// Package config provides the configuration loader for quarry.
package config

import (
	"os"

	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{logger: log}
}

// Load reads the configuration file at path.
func (l *Loader) Load(path string) (*domain.Project, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Quarryfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	project, err := file.toDomain()
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug("configuration loaded",
		"path", path,
		"platforms", len(project.Platforms),
		"dependencies", len(project.Dependencies))

	return project, nil
}
