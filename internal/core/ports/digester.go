// Package ports defines the core interfaces for the application.
package ports

// Digester computes content digests of artifact files. The digest
// algorithm is fixed by the version file contract; callers only see
// hex-encoded strings and compare them for exact equality.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// DigestFile returns the hex-encoded content digest of the file at
	// path. It fails if the file is missing or unreadable.
	DigestFile(path string) (string, error)
}
