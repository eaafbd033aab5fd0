package fs

import (
	"os"
	"strings"

	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactScanner = (*Scanner)(nil)

// Scanner discovers framework bundles in platform build directories.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan lists the *.framework bundles in the platform's build directory and
// returns one artifact per bundle, pointing at the binary inside. ReadDir
// sorts entries by name, so the result is already in stable order.
func (s *Scanner) Scan(rootDir string, p domain.Platform) ([]domain.ArtifactFile, error) {
	dir := domain.PlatformBuildDir(rootDir, p)

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			// A platform that was never built has no directory.
			return []domain.ArtifactFile{}, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build directory"), "dir", dir)
	}

	artifacts := make([]domain.ArtifactFile, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasSuffix(entry.Name(), domain.FrameworkSuffix) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), domain.FrameworkSuffix)
		artifacts = append(artifacts, domain.ArtifactFile{
			Name: name,
			Path: domain.FrameworkBinaryPath(rootDir, p, name),
		})
	}

	return artifacts, nil
}
