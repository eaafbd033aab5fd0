package config

import (
	"slices"

	"github.com/quarrydev/quarry/internal/core/domain"
	"go.trai.ch/zerr"
)

// Quarryfile represents the structure of the quarry.yaml configuration file.
type Quarryfile struct {
	Version      string            `yaml:"version"`
	Platforms    []string          `yaml:"platforms"`
	Dependencies map[string]string `yaml:"dependencies"`
}

// toDomain validates the raw file and converts it to a project.
func (q Quarryfile) toDomain() (*domain.Project, error) {
	if q.Version != "" && q.Version != "1" {
		return nil, zerr.With(domain.ErrUnsupportedConfigVersion, "version", q.Version)
	}

	platforms, err := canonicalizePlatforms(q.Platforms)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(q.Dependencies))
	for name := range q.Dependencies {
		names = append(names, name)
	}
	slices.Sort(names)

	deps := make([]domain.Dependency, 0, len(names))
	for _, name := range names {
		commitish := q.Dependencies[name]
		if commitish == "" {
			return nil, zerr.With(domain.ErrDependencyNotPinned, "dependency", name)
		}
		deps = append(deps, domain.Dependency{Name: name, Commitish: commitish})
	}

	return &domain.Project{
		Platforms:    platforms,
		Dependencies: deps,
	}, nil
}

// canonicalizePlatforms parses, deduplicates, and orders the platform
// list. An absent list defaults to every supported platform.
func canonicalizePlatforms(names []string) ([]domain.Platform, error) {
	if len(names) == 0 {
		return slices.Clone(domain.AllPlatforms), nil
	}

	seen := make(map[domain.Platform]bool, len(names))
	for _, name := range names {
		p, err := domain.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		seen[p] = true
	}

	platforms := make([]domain.Platform, 0, len(seen))
	for _, p := range domain.AllPlatforms {
		if seen[p] {
			platforms = append(platforms, p)
		}
	}
	return platforms, nil
}
