package domain

import "go.trai.ch/zerr"

// Platform identifies one build target a dependency can be built for.
// The set of platforms is closed; adding one means extending the
// constants below and the two mapping methods.
type Platform int

const (
	// PlatformMac is the macOS build target.
	PlatformMac Platform = iota
	// PlatformIOS is the iOS build target.
	PlatformIOS
	// PlatformTVOS is the tvOS build target.
	PlatformTVOS
	// PlatformWatchOS is the watchOS build target.
	PlatformWatchOS
)

// AllPlatforms lists every supported platform. The order matches the
// lexicographic order of the serialized keys, so records written per
// this order round-trip byte-identically.
var AllPlatforms = []Platform{PlatformMac, PlatformIOS, PlatformTVOS, PlatformWatchOS}

// Key returns the identifier used for this platform in version files.
func (p Platform) Key() string {
	switch p {
	case PlatformMac:
		return "Mac"
	case PlatformIOS:
		return "iOS"
	case PlatformTVOS:
		return "tvOS"
	case PlatformWatchOS:
		return "watchOS"
	default:
		return ""
	}
}

// Subdirectory returns the name of the build output subdirectory for
// this platform.
func (p Platform) Subdirectory() string {
	switch p {
	case PlatformMac:
		return "Mac"
	case PlatformIOS:
		return "iOS"
	case PlatformTVOS:
		return "tvOS"
	case PlatformWatchOS:
		return "watchOS"
	default:
		return ""
	}
}

// Valid reports whether p is one of the supported platforms.
func (p Platform) Valid() bool {
	return p.Key() != ""
}

// String returns the platform key.
func (p Platform) String() string {
	return p.Key()
}

// ParsePlatform converts a platform identifier to a Platform.
// "macOS" is accepted as an alias for Mac since that is what users
// tend to type on the command line.
func ParsePlatform(s string) (Platform, error) {
	switch s {
	case "Mac", "macOS":
		return PlatformMac, nil
	case "iOS":
		return PlatformIOS, nil
	case "tvOS":
		return PlatformTVOS, nil
	case "watchOS":
		return PlatformWatchOS, nil
	default:
		return 0, zerr.With(ErrUnknownPlatform, "platform", s)
	}
}
