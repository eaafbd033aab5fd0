package domain

import "go.trai.ch/zerr"

var (
	// ErrRecordSyntax is returned when a version file is not valid JSON.
	ErrRecordSyntax = zerr.New("version record is not valid JSON")

	// ErrRecordSchema is returned when a version file is valid JSON but a
	// platform entry has a malformed shape.
	ErrRecordSchema = zerr.New("version record has malformed shape")

	// ErrArtifactMissing is returned when an artifact file expected on disk
	// is absent.
	ErrArtifactMissing = zerr.New("artifact file missing")

	// ErrUnknownPlatform is returned when a platform identifier is not in
	// the supported set.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrDependencyNotPinned is returned when a dependency has no pinned
	// commitish in the project configuration.
	ErrDependencyNotPinned = zerr.New("dependency not pinned")

	// ErrUnsupportedConfigVersion is returned when the configuration file
	// declares a version this build does not understand.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrNoArtifacts is returned when a record operation finds nothing to
	// record for any requested platform.
	ErrNoArtifacts = zerr.New("no built artifacts found")

	// ErrBuildRequired signals that cached binaries cannot be reused and
	// the dependency must be rebuilt. The CLI maps it to a non-zero exit
	// code without an error report.
	ErrBuildRequired = zerr.New("build required")

	// ErrNoVersionRecord is returned when a read-only operation needs a
	// version record that does not exist or cannot be decoded.
	ErrNoVersionRecord = zerr.New("no version record")
)
