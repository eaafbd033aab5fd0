package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/quarrydev/quarry/internal/core/ports"
)

const (
	DigesterNodeID graft.ID = "adapter.fs.digester"
	ScannerNodeID  graft.ID = "adapter.fs.scanner"
)

func init() {
	// Digester Node
	graft.Register(graft.Node[ports.Digester]{
		ID:        DigesterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Digester, error) {
			return NewDigester(), nil
		},
	})

	// Scanner Node
	graft.Register(graft.Node[ports.ArtifactScanner]{
		ID:        ScannerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactScanner, error) {
			return NewScanner(), nil
		},
	})
}
