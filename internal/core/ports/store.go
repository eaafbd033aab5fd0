package ports

import "github.com/quarrydev/quarry/internal/core/domain"

// VersionStore reads and persists per-dependency version records.
// The store owns the read/merge/write sequencing for a record; no
// other component merges or writes version files.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type VersionStore interface {
	// Read returns the record persisted at path. A missing, unreadable,
	// or undecodable file yields (nil, nil): a cache we cannot trust is
	// the same as no cache at all.
	Read(path string) (domain.VersionRecord, error)

	// Write merges the freshly built platform results with the prior
	// record at path and persists the result atomically. Platforms not
	// present in fresh keep their prior entries. On failure the prior
	// record is left untouched.
	Write(path string, fresh map[domain.Platform]domain.PlatformCache) error
}
