package domain

import "path/filepath"

const (
	// ConfigFileName is the default name of the project configuration
	// file, looked up in the root directory.
	ConfigFileName = "quarry.yaml"

	// BinariesDirName is the fixed subfolder under the root directory
	// that holds built binaries and version files.
	BinariesDirName = "Build"

	// VersionFilePrefix hides version files from casual listings.
	VersionFilePrefix = "."

	// VersionFileSuffix is the extension of version files.
	VersionFileSuffix = ".version"

	// FrameworkSuffix is the extension of framework containers.
	FrameworkSuffix = ".framework"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// VersionFilePath returns the path of the version file for a project:
// <rootDir>/Build/.<project>.version. Every component that touches a
// version file derives its location here and nowhere else.
func VersionFilePath(rootDir, project string) string {
	return filepath.Join(rootDir, BinariesDirName, VersionFilePrefix+project+VersionFileSuffix)
}

// PlatformBuildDir returns the directory that holds the built
// frameworks for one platform: <rootDir>/Build/<platform>.
func PlatformBuildDir(rootDir string, p Platform) string {
	return filepath.Join(rootDir, BinariesDirName, p.Subdirectory())
}

// FrameworkBinaryPath returns the path of the binary inside a built
// framework container: <rootDir>/Build/<platform>/<name>.framework/<name>.
// The artifact name forms both the container and the inner binary.
func FrameworkBinaryPath(rootDir string, p Platform, name string) string {
	return filepath.Join(PlatformBuildDir(rootDir, p), name+FrameworkSuffix, name)
}
