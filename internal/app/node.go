package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/quarrydev/quarry/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/quarrydev/quarry/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"github.com/quarrydev/quarry/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/quarrydev/quarry/internal/core/ports"
	"github.com/quarrydev/quarry/internal/engine/skip"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.ScannerNodeID,
			skip.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.VersionStore](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
			if err != nil {
				return nil, err
			}

			scanner, err := graft.Dep[ports.ArtifactScanner](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[*skip.Engine](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(loader, store, digester, scanner, engine, log, telemetry), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.VersionStore](ctx)
	if err != nil {
		return nil, err
	}

	digester, err := graft.Dep[ports.Digester](ctx)
	if err != nil {
		return nil, err
	}

	scanner, err := graft.Dep[ports.ArtifactScanner](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		Telemetry:    telemetry,
		ConfigLoader: loader,
		Store:        store,
		Digester:     digester,
		Scanner:      scanner,
	}, nil
}
