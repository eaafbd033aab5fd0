package versionfile

import (
	"encoding/json"
	"errors"

	"github.com/quarrydev/quarry/internal/core/domain"
	"go.trai.ch/zerr"
)

// platformEntry is the wire form of one platform's cache state.
type platformEntry struct {
	Commitish        *string          `json:"commitish"`
	CachedFrameworks []frameworkEntry `json:"cachedFrameworks"`
}

// frameworkEntry is the wire form of one cached framework binary.
type frameworkEntry struct {
	Name *string `json:"name"`
	SHA1 *string `json:"sha1"`
}

// encodeRecord serializes a record as indented JSON. Map keys are
// marshaled in sorted order, so the output is deterministic.
func encodeRecord(record domain.VersionRecord) ([]byte, error) {
	entries := make(map[string]platformEntry, len(record))
	for p, cache := range record {
		frameworks := make([]frameworkEntry, 0, len(cache.Frameworks))
		for _, fw := range cache.Frameworks {
			frameworks = append(frameworks, frameworkEntry{
				Name: &fw.Name,
				SHA1: &fw.Digest,
			})
		}
		commitish := cache.Commitish
		entries[p.Key()] = platformEntry{
			Commitish:        &commitish,
			CachedFrameworks: frameworks,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal version record")
	}
	return data, nil
}

// decodeRecord parses a serialized record. Keys outside the supported
// platform set are ignored.
func decodeRecord(data []byte) (domain.VersionRecord, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, classifyDecodeError(err)
	}

	record := make(domain.VersionRecord, len(raw))
	for _, p := range domain.AllPlatforms {
		payload, ok := raw[p.Key()]
		if !ok {
			continue
		}

		var entry platformEntry
		if err := json.Unmarshal(payload, &entry); err != nil {
			return nil, zerr.With(classifyDecodeError(err), "platform", p.Key())
		}

		cache, err := entry.toDomain()
		if err != nil {
			return nil, zerr.With(err, "platform", p.Key())
		}
		record[p] = cache
	}

	return record, nil
}

// classifyDecodeError separates files that are not JSON at all from
// files that are JSON of the wrong shape.
func classifyDecodeError(err error) error {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		wrapped := zerr.With(zerr.Wrap(domain.ErrRecordSyntax, "failed to parse version record"), "cause", err.Error())
		return zerr.With(wrapped, "offset", syntaxErr.Offset)
	}
	return zerr.With(zerr.Wrap(domain.ErrRecordSchema, "failed to decode version record"), "cause", err.Error())
}

// toDomain validates the wire shape. Commitish, name and sha1 are
// required. A missing cachedFrameworks list decodes as empty.
func (e platformEntry) toDomain() (domain.PlatformCache, error) {
	if e.Commitish == nil {
		return domain.PlatformCache{}, zerr.Wrap(domain.ErrRecordSchema, "platform entry missing commitish")
	}

	frameworks := make([]domain.Framework, 0, len(e.CachedFrameworks))
	for _, fw := range e.CachedFrameworks {
		if fw.Name == nil || fw.SHA1 == nil {
			return domain.PlatformCache{}, zerr.Wrap(domain.ErrRecordSchema, "framework entry missing name or sha1")
		}
		frameworks = append(frameworks, domain.Framework{Name: *fw.Name, Digest: *fw.SHA1})
	}

	return domain.NewPlatformCache(*e.Commitish, frameworks), nil
}
