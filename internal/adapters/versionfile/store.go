// Package versionfile persists per-dependency version records as JSON
// files under the build directory.
package versionfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/quarrydev/quarry/internal/core/domain"
	"github.com/quarrydev/quarry/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.VersionStore = (*Store)(nil)

// Store implements ports.VersionStore on the local file system.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

// Read returns the record persisted at path. A missing, unreadable, or
// damaged file yields nil. Damage is logged with a content fingerprint
// so repeated reports of the same bytes can be correlated.
func (s *Store) Read(path string) (domain.VersionRecord, error) {
	_, record := s.read(path)
	return record, nil
}

// read loads and decodes the file at path, tolerating every failure.
// It returns the raw bytes when the file was readable and the decoded
// record when it was also well formed.
func (s *Store) read(path string) ([]byte, domain.VersionRecord) {
	//nolint:gosec // Path is derived from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("version record unreadable", "path", path, "error", err)
		}
		return nil, nil
	}

	record, err := decodeRecord(data)
	if err != nil {
		s.logger.Warn("version record damaged, treating as absent",
			"path", path,
			"fingerprint", fmt.Sprintf("%016x", xxhash.Sum64(data)),
			"error", err)
		return data, nil
	}

	return data, record
}

// Write merges fresh into the record at path and persists the result
// atomically. Platforms absent from fresh keep their prior entries.
func (s *Store) Write(path string, fresh map[domain.Platform]domain.PlatformCache) error {
	existing, prior := s.read(path)

	merged := domain.Merge(prior, fresh)

	data, err := encodeRecord(merged)
	if err != nil {
		return err
	}

	// Skip the replace when the merged record already matches the file.
	if existing != nil && xxhash.Sum64(existing) == xxhash.Sum64(data) {
		s.logger.Debug("version record unchanged", "path", path)
		return nil
	}

	return s.replace(path, data)
}

// replace writes data through a temp file in the target directory so a
// failed write leaves the previous record intact.
func (s *Store) replace(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create version file directory"), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, ".version-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create temp version file"), "dir", dir)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to write version record"), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to set version file mode"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to close temp version file"), "path", path)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return zerr.With(zerr.Wrap(err, "failed to replace version file"), "path", path)
	}

	return nil
}
