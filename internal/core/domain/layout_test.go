package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/quarrydev/quarry/internal/core/domain"
)

func TestVersionFilePath(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{
			name:     "VersionFilePath",
			got:      domain.VersionFilePath("/work", "Foo"),
			expected: filepath.Join("/work", "Build", ".Foo.version"),
		},
		{
			name:     "RelativeRoot",
			got:      domain.VersionFilePath(".", "Alamofire"),
			expected: filepath.Join("Build", ".Alamofire.version"),
		},
		{
			name:     "PlatformBuildDir",
			got:      domain.PlatformBuildDir("/work", domain.PlatformIOS),
			expected: filepath.Join("/work", "Build", "iOS"),
		},
		{
			name:     "FrameworkBinaryPath",
			got:      domain.FrameworkBinaryPath("/work", domain.PlatformIOS, "Foo"),
			expected: filepath.Join("/work", "Build", "iOS", "Foo.framework", "Foo"),
		},
		{
			name:     "FrameworkBinaryPathMac",
			got:      domain.FrameworkBinaryPath("/work", domain.PlatformMac, "Bar"),
			expected: filepath.Join("/work", "Build", "Mac", "Bar.framework", "Bar"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("got %q, expected %q", tt.got, tt.expected)
			}
		})
	}
}
