// Package version exposes build metadata set through -ldflags.
package version

import "runtime/debug"

// Set at build time:
//
//	go build -ldflags "-X github.com/rshade/carbonfocus/pkg/version.version=1.2.3"
//
//nolint:gochecknoglobals // linker-injected build metadata
var (
	version = "dev"
	commit  = ""
)

// GetVersion returns the release version, "dev" for local builds.
func GetVersion() string {
	return version
}

// GetCommit returns the VCS revision, falling back to the module build info.
func GetCommit() string {
	if commit != "" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
