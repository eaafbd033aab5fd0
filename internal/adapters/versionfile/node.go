package versionfile

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/quarrydev/quarry/internal/adapters/logger"
	"github.com/quarrydev/quarry/internal/core/ports"
)

const NodeID graft.ID = "adapter.versionfile"

func init() {
	graft.Register(graft.Node[ports.VersionStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.VersionStore, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(log), nil
		},
	})
}
