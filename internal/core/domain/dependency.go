package domain

import "go.trai.ch/zerr"

// Dependency identifies a project together with the commit identity it
// is pinned at. Resolution of version constraints to a commitish
// happens outside this tool; we only consume the result.
type Dependency struct {
	// Name is the project name, used to locate the version file and
	// the built frameworks.
	Name string
	// Commitish is the resolved source revision (tag, branch, or
	// exact revision id).
	Commitish string
}

// Project is the loaded project configuration: which platforms the
// project builds for by default and which dependencies are pinned at
// which commitish.
type Project struct {
	// Platforms is the default platform set for cache checks and
	// recording. Empty means no default was configured.
	Platforms []Platform
	// Dependencies holds the pinned dependencies in name order.
	Dependencies []Dependency
}

// Pinned returns the pinned dependency with the given name.
func (p *Project) Pinned(name string) (Dependency, error) {
	for _, dep := range p.Dependencies {
		if dep.Name == name {
			return dep, nil
		}
	}
	return Dependency{}, zerr.With(ErrDependencyNotPinned, "dependency", name)
}

// ArtifactFile is one built artifact on disk: its stable name and the
// path of the binary to digest.
type ArtifactFile struct {
	Name string
	Path string
}
