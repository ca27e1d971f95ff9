package app

import "fmt"

// Version and Commit are set via ldflags at build time.
// Example: go build -ldflags "-X github.com/heartmarshall/ruwordnet/internal/app.Version=1.0.0"
var (
	Version = "dev"
	Commit  = "unknown"
)

// BuildVersion returns the version string the CLI reports.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
