// Package version provides build version information for the arrmcp binaries.
//
// The semantic version is bumped manually for releases; the commit is
// injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/arrmcp/arrmcp/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

// These variables are set via -ldflags at build time.
var (
	// Version is the semantic version of the release.
	Version = "0.3.0"

	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"
)

// Info returns a formatted version string suitable for startup banners.
func Info() string {
	if GitCommit == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, GitCommit)
}
