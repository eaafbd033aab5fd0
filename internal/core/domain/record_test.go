package domain_test

import (
	"reflect"
	"testing"

	"github.com/quarrydev/quarry/internal/core/domain"
)

func TestMerge_SubsetUpdateKeepsUntouchedPlatforms(t *testing.T) {
	prior := domain.VersionRecord{
		domain.PlatformIOS: domain.NewPlatformCache("abc123", []domain.Framework{
			{Name: "Foo", Digest: "d1"},
		}),
		domain.PlatformMac: domain.NewPlatformCache("abc123", []domain.Framework{
			{Name: "Foo", Digest: "d2"},
		}),
	}

	fresh := map[domain.Platform]domain.PlatformCache{
		domain.PlatformIOS: domain.NewPlatformCache("def456", []domain.Framework{
			{Name: "Foo", Digest: "d3"},
		}),
	}

	merged := domain.Merge(prior, fresh)

	if got := merged[domain.PlatformIOS].Commitish; got != "def456" {
		t.Errorf("iOS commitish = %q, want replaced value def456", got)
	}
	if got := merged[domain.PlatformIOS].Frameworks[0].Digest; got != "d3" {
		t.Errorf("iOS digest = %q, want d3", got)
	}

	mac, ok := merged[domain.PlatformMac]
	if !ok {
		t.Fatal("Mac entry was erased by a build that only touched iOS")
	}
	if !reflect.DeepEqual(mac, prior[domain.PlatformMac]) {
		t.Errorf("Mac entry changed: got %+v, want %+v", mac, prior[domain.PlatformMac])
	}
}

func TestMerge_NilPrior(t *testing.T) {
	fresh := map[domain.Platform]domain.PlatformCache{
		domain.PlatformTVOS: domain.NewPlatformCache("abc", []domain.Framework{{Name: "Bar", Digest: "d9"}}),
	}

	merged := domain.Merge(nil, fresh)

	if len(merged) != 1 {
		t.Fatalf("expected 1 platform, got %d", len(merged))
	}
	if _, ok := merged[domain.PlatformTVOS]; !ok {
		t.Error("tvOS entry missing from merged record")
	}
}

func TestMerge_DoesNotAliasInputs(t *testing.T) {
	priorFrameworks := []domain.Framework{{Name: "Foo", Digest: "d1"}}
	prior := domain.VersionRecord{
		domain.PlatformMac: domain.NewPlatformCache("abc", priorFrameworks),
	}

	merged := domain.Merge(prior, nil)
	merged[domain.PlatformMac].Frameworks[0] = domain.Framework{Name: "Mutated", Digest: "x"}

	if prior[domain.PlatformMac].Frameworks[0].Name != "Foo" {
		t.Error("mutating the merged record leaked into the prior record")
	}
}

func TestVersionRecord_PlatformsOrdered(t *testing.T) {
	rec := domain.VersionRecord{
		domain.PlatformWatchOS: domain.NewPlatformCache("c", nil),
		domain.PlatformMac:     domain.NewPlatformCache("c", nil),
		domain.PlatformTVOS:    domain.NewPlatformCache("c", nil),
	}

	got := rec.Platforms()
	want := []domain.Platform{domain.PlatformMac, domain.PlatformTVOS, domain.PlatformWatchOS}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Platforms() = %v, want %v", got, want)
	}
}

func TestNewPlatformCache_CanonicalForm(t *testing.T) {
	cache := domain.NewPlatformCache("abc", nil)
	if cache.Frameworks == nil {
		t.Error("Frameworks is nil, want empty slice")
	}
	if len(cache.Frameworks) != 0 {
		t.Errorf("Frameworks has %d entries, want 0", len(cache.Frameworks))
	}
}

func TestProject_Pinned(t *testing.T) {
	project := &domain.Project{
		Dependencies: []domain.Dependency{
			{Name: "Alamofire", Commitish: "5.6.4"},
			{Name: "Foo", Commitish: "abc123"},
		},
	}

	dep, err := project.Pinned("Foo")
	if err != nil {
		t.Fatalf("Pinned failed: %v", err)
	}
	if dep.Commitish != "abc123" {
		t.Errorf("commitish = %q, want abc123", dep.Commitish)
	}
}

func TestProject_PinnedMissing(t *testing.T) {
	project := &domain.Project{}

	_, err := project.Pinned("Ghost")
	if err == nil {
		t.Fatal("expected error for unpinned dependency, got nil")
	}
}
