package domain

import "slices"

// Framework captures the identity of one built binary artifact at the
// moment it was recorded. The digest is never refreshed implicitly; a
// stale digest is exactly what makes a cache entry invalid.
type Framework struct {
	// Name is the artifact identifier, stable across builds.
	Name string
	// Digest is the hex-encoded content hash of the framework binary.
	Digest string
}

// PlatformCache is the cached build state for a single platform.
// Every framework in one PlatformCache was built from the same
// commitish.
type PlatformCache struct {
	// Commitish is the source revision the frameworks were built from.
	Commitish string
	// Frameworks holds the recorded artifacts in original scan order.
	// The order carries no meaning but is preserved so serialization
	// stays deterministic.
	Frameworks []Framework
}

// NewPlatformCache builds a PlatformCache in canonical form: the
// framework slice is never nil, so an empty build result and a decoded
// empty list compare equal.
func NewPlatformCache(commitish string, frameworks []Framework) PlatformCache {
	if frameworks == nil {
		frameworks = []Framework{}
	}
	return PlatformCache{Commitish: commitish, Frameworks: frameworks}
}

// VersionRecord is the full cache state for one dependency: a mapping
// from platform to its cached build state. A platform that is absent
// from the map has no cache, which is distinct from a platform cached
// with an empty framework list.
type VersionRecord map[Platform]PlatformCache

// Platforms returns the platforms present in the record, ordered as in
// AllPlatforms.
func (r VersionRecord) Platforms() []Platform {
	var present []Platform
	for _, p := range AllPlatforms {
		if _, ok := r[p]; ok {
			present = append(present, p)
		}
	}
	return present
}

// Merge combines freshly built platform results with a prior record.
// Platforms in fresh replace their prior entries; every other platform
// present in prior carries forward unchanged. This is what keeps a
// build that only touches a subset of platforms from erasing cache
// validity for the untouched ones. Neither input is mutated.
func Merge(prior VersionRecord, fresh map[Platform]PlatformCache) VersionRecord {
	merged := make(VersionRecord, len(prior)+len(fresh))
	for p, cache := range prior {
		merged[p] = clonePlatformCache(cache)
	}
	for p, cache := range fresh {
		merged[p] = clonePlatformCache(cache)
	}
	return merged
}

func clonePlatformCache(cache PlatformCache) PlatformCache {
	return NewPlatformCache(cache.Commitish, slices.Clone(cache.Frameworks))
}
