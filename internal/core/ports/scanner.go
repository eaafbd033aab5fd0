package ports

import "github.com/quarrydev/quarry/internal/core/domain"

// ArtifactScanner discovers built framework binaries on disk.
//
//go:generate mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ArtifactScanner interface {
	// Scan lists the framework binaries present in the platform's build
	// directory, in stable name order. A platform that was never built
	// yields an empty list, not an error.
	Scan(rootDir string, p domain.Platform) ([]domain.ArtifactFile, error)
}
