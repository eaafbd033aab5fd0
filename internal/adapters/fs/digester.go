// Package fs provides file system adapters for scanning and digesting
// built artifacts.
package fs

import (
	"crypto/sha1" //nolint:gosec // SHA-1 is fixed by the version file format
	"encoding/hex"
	"io"
	"os"

	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Digester = (*Digester)(nil)

// Digester computes SHA-1 content digests of artifact binaries.
type Digester struct{}

// NewDigester creates a new Digester.
func NewDigester() *Digester {
	return &Digester{}
}

// DigestFile computes the hex-encoded SHA-1 digest of the file at path.
func (d *Digester) DigestFile(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if os.IsNotExist(err) {
			return "", zerr.With(zerr.Wrap(domain.ErrArtifactMissing, "failed to open artifact"), "path", path)
		}
		return "", zerr.With(zerr.Wrap(err, "failed to open artifact"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := sha1.New() //nolint:gosec // SHA-1 is fixed by the version file format
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to digest artifact content"), "path", path)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
