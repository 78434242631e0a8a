// Package buildinfo carries build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/yonesuke/fractal/internal/buildinfo.Version=v1.0.0 \
//	    -X github.com/yonesuke/fractal/internal/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/yonesuke/fractal/internal/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
