// Package skip implements the cache reuse decision for built dependencies.
package skip

import (
	"context"
	"fmt"

	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
)

// Engine decides whether a dependency's cached binaries can be reused.
type Engine struct {
	store     ports.VersionStore
	digester  ports.Digester
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewEngine creates a new Engine.
func NewEngine(
	store ports.VersionStore,
	digester ports.Digester,
	log ports.Logger,
	telemetry ports.Telemetry,
) *Engine {
	return &Engine{
		store:     store,
		digester:  digester,
		logger:    log,
		telemetry: telemetry,
	}
}

// CanSkip reports whether every requested platform holds a valid cached
// build of the dependency at its pinned commitish. An empty platform set
// checks the platforms present in the record. Damaged or missing cache
// state answers false; the decision itself never fails.
func (e *Engine) CanSkip(ctx context.Context, dep domain.Dependency, platforms []domain.Platform, rootDir string) bool {
	record, err := e.store.Read(domain.VersionFilePath(rootDir, dep.Name))
	if err != nil || record == nil {
		e.logger.Debug("no usable version record", "dependency", dep.Name)
		return false
	}

	toCheck := platforms
	if len(toCheck) == 0 {
		toCheck = record.Platforms()
	}
	if len(toCheck) == 0 {
		// A record with no platform entries vouches for nothing.
		e.logger.Debug("version record is empty", "dependency", dep.Name)
		return false
	}

	for _, p := range toCheck {
		if !e.platformValid(ctx, dep, record, p, rootDir) {
			return false
		}
	}

	return true
}

// platformValid checks one platform's cache entry against the pinned
// commitish and the artifacts on disk.
func (e *Engine) platformValid(
	ctx context.Context,
	dep domain.Dependency,
	record domain.VersionRecord,
	p domain.Platform,
	rootDir string,
) bool {
	_, vtx := e.telemetry.Record(ctx, fmt.Sprintf("check %s [%s]", dep.Name, p))

	ok := e.verify(vtx, dep, record, p, rootDir)
	if ok {
		vtx.Cached()
	}
	vtx.Complete(nil)

	return ok
}

func (e *Engine) verify(
	vtx ports.Vertex,
	dep domain.Dependency,
	record domain.VersionRecord,
	p domain.Platform,
	rootDir string,
) bool {
	cache, ok := record[p]
	if !ok {
		e.miss(vtx, dep, p, "platform not recorded")
		return false
	}

	if cache.Commitish != dep.Commitish {
		e.miss(vtx, dep, p, "commitish changed",
			"recorded", cache.Commitish, "pinned", dep.Commitish)
		return false
	}

	for _, fw := range cache.Frameworks {
		path := domain.FrameworkBinaryPath(rootDir, p, fw.Name)

		digest, err := e.digester.DigestFile(path)
		if err != nil {
			// Missing or unreadable artifact is a cache miss, not an error.
			e.miss(vtx, dep, p, "artifact unreadable", "framework", fw.Name)
			return false
		}
		if digest != fw.Digest {
			e.miss(vtx, dep, p, "artifact digest changed", "framework", fw.Name)
			return false
		}
	}

	return true
}

// miss reports one cache miss reason to the operator log and to the
// telemetry vertex.
func (e *Engine) miss(vtx ports.Vertex, dep domain.Dependency, p domain.Platform, reason string, args ...any) {
	_, _ = fmt.Fprintln(vtx.Stderr(), reason)

	kv := append([]any{"dependency", dep.Name, "platform", p, "reason", reason}, args...)
	e.logger.Debug("cache miss", kv...)
}
