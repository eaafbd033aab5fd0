package skip

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/quarrydev/quarry/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"github.com/quarrydev/quarry/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"github.com/quarrydev/quarry/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"github.com/quarrydev/quarry/internal/adapters/versionfile"        //nolint:depguard // Wired in engine wiring
	"github.com/quarrydev/quarry/internal/core/ports"
)

// NodeID is the unique identifier for the skip engine Graft node.
const NodeID graft.ID = "engine.skip"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			versionfile.NodeID,
			fs.DigesterNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Engine, error) {
			store, err := graft.Dep[ports.VersionStore](ctx)
			if err != nil {
				return nil, err
			}

			digester, err := graft.Dep[ports.Digester](ctx)
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

			return NewEngine(store, digester, log, telemetry), nil
		},
	})
}
