// Package app implements the application layer for quarry.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
	"github.com/quarrydev/quarry/internal/engine/skip"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.VersionStore
	digester     ports.Digester
	scanner      ports.ArtifactScanner
	engine       *skip.Engine
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.VersionStore,
	digester ports.Digester,
	scanner ports.ArtifactScanner,
	engine *skip.Engine,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		digester:     digester,
		scanner:      scanner,
		engine:       engine,
		logger:       log,
		telemetry:    telemetry,
	}
}

// Options carries the invocation settings shared by every command.
type Options struct {
	// RootDir is the project root. Version records and built artifacts
	// live beneath <RootDir>/Build. Empty means the current directory.
	RootDir string
	// ConfigFile is the project configuration path, absolute or
	// relative to RootDir. Empty means quarry.yaml.
	ConfigFile string
}

func (o Options) rootDir() string {
	if o.RootDir == "" {
		return "."
	}
	return o.RootDir
}

func (o Options) configPath() string {
	name := o.ConfigFile
	if name == "" {
		name = domain.ConfigFileName
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(o.rootDir(), name)
}

// CanSkipBuild reports whether the dependency's cached binaries are
// still valid for the given platforms. An empty platform set checks the
// platforms present in the version record. Any cache damage answers
// false; rebuilding is always safe.
func (a *App) CanSkipBuild(ctx context.Context, dep domain.Dependency, platforms []domain.Platform, rootDir string) bool {
	return a.engine.CanSkip(ctx, dep, platforms, rootDir)
}

// RecordBuildResult digests the built artifacts and merges them into
// the dependency's version record. Platforms that produced no artifacts
// get no entry; prior entries for them survive the merge. Any digest
// failure aborts the whole update and leaves a prior record untouched.
func (a *App) RecordBuildResult(ctx context.Context, dep domain.Dependency, artifacts map[domain.Platform][]domain.ArtifactFile, rootDir string) error {
	fresh := make(map[domain.Platform]domain.PlatformCache, len(artifacts))

	for _, p := range builtPlatforms(artifacts) {
		files := artifacts[p]
		if len(files) == 0 {
			continue
		}

		frameworks, err := a.digestPlatform(ctx, dep, p, files)
		if err != nil {
			return err
		}
		fresh[p] = domain.NewPlatformCache(dep.Commitish, frameworks)
	}

	if len(fresh) == 0 {
		return zerr.With(domain.ErrNoArtifacts, "dependency", dep.Name)
	}

	return a.store.Write(domain.VersionFilePath(rootDir, dep.Name), fresh)
}

// Check decides whether the named dependency can skip its rebuild for
// the project's configured platforms. Returns nil when every platform
// is cached and domain.ErrBuildRequired when at least one is not.
func (a *App) Check(ctx context.Context, opts Options, depName string) error {
	project, dep, err := a.resolve(opts, depName)
	if err != nil {
		return err
	}

	root := opts.rootDir()
	valid := true
	for _, p := range project.Platforms {
		// One engine call per platform so that every platform gets a
		// status, not just the first miss.
		if a.engine.CanSkip(ctx, dep, []domain.Platform{p}, root) {
			a.logger.Info("cached build valid", "dependency", dep.Name, "platform", p)
		} else {
			a.logger.Info("rebuild required", "dependency", dep.Name, "platform", p)
			valid = false
		}
	}

	if !valid {
		return zerr.With(domain.ErrBuildRequired, "dependency", dep.Name)
	}
	return nil
}

// Record scans the build directories for the named dependency's
// artifacts and persists their digests. The platform names narrow the
// scan; empty means the project's configured platforms.
func (a *App) Record(ctx context.Context, opts Options, depName string, platformNames []string) error {
	project, dep, err := a.resolve(opts, depName)
	if err != nil {
		return err
	}

	platforms, err := recordPlatforms(project, platformNames)
	if err != nil {
		return err
	}

	root := opts.rootDir()
	artifacts := make(map[domain.Platform][]domain.ArtifactFile, len(platforms))
	for _, p := range platforms {
		files, err := a.scanner.Scan(root, p)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to scan build directory"), "platform", p.Key())
		}
		artifacts[p] = files
	}

	return a.RecordBuildResult(ctx, dep, artifacts, root)
}

// Show returns the current version record for the named dependency.
func (a *App) Show(_ context.Context, opts Options, depName string) (domain.VersionRecord, error) {
	record, err := a.store.Read(domain.VersionFilePath(opts.rootDir(), depName))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read version record")
	}
	if record == nil {
		return nil, zerr.With(domain.ErrNoVersionRecord, "dependency", depName)
	}
	return record, nil
}

// resolve loads the project configuration and looks up the dependency's
// pinned commitish.
func (a *App) resolve(opts Options, depName string) (*domain.Project, domain.Dependency, error) {
	project, err := a.configLoader.Load(opts.configPath())
	if err != nil {
		return nil, domain.Dependency{}, zerr.Wrap(err, "failed to load configuration")
	}

	dep, err := project.Pinned(depName)
	if err != nil {
		return nil, domain.Dependency{}, err
	}

	return project, dep, nil
}

// digestPlatform digests one platform's artifacts under a bounded
// worker group, preserving scan order.
func (a *App) digestPlatform(ctx context.Context, dep domain.Dependency, p domain.Platform, files []domain.ArtifactFile) ([]domain.Framework, error) {
	_, vtx := a.telemetry.Record(ctx, fmt.Sprintf("record %s [%s]", dep.Name, p))

	frameworks := make([]domain.Framework, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			digest, err := a.digester.DigestFile(file.Path)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to digest artifact"), "framework", file.Name)
			}
			frameworks[i] = domain.Framework{Name: file.Name, Digest: digest}
			return nil
		})
	}

	err := g.Wait()
	vtx.Complete(err)
	if err != nil {
		return nil, zerr.With(err, "platform", p.Key())
	}

	_, _ = fmt.Fprintf(vtx.Stdout(), "%d frameworks digested\n", len(frameworks))
	a.logger.Debug("platform recorded", "dependency", dep.Name, "platform", p, "frameworks", len(frameworks))

	return frameworks, nil
}

// builtPlatforms returns the platforms present in the artifact map in
// the canonical platform order.
func builtPlatforms(artifacts map[domain.Platform][]domain.ArtifactFile) []domain.Platform {
	platforms := make([]domain.Platform, 0, len(artifacts))
	for _, p := range domain.AllPlatforms {
		if _, ok := artifacts[p]; ok {
			platforms = append(platforms, p)
		}
	}
	return platforms
}

// recordPlatforms resolves the requested platform names, defaulting to
// the project's configured set.
func recordPlatforms(project *domain.Project, names []string) ([]domain.Platform, error) {
	if len(names) == 0 {
		return project.Platforms, nil
	}

	platforms := make([]domain.Platform, 0, len(names))
	for _, name := range names {
		p, err := domain.ParsePlatform(name)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}
