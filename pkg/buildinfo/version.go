// Package buildinfo holds the version stamped into vtdesigner binaries.
//
// The linker sets the variables at release time:
//
//	go build -ldflags "-X github.com/matzehuels/vtdesigner/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/vtdesigner/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/vtdesigner/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the abbreviated git revision.
	Commit = "none"

	// Date is the UTC build time.
	Date = "unknown"
)

// Resolved returns Version, falling back to the module version recorded
// by "go install" when no ldflags were given.
func Resolved() string {
	if Version != "dev" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return Version
}

// String returns the multi-line report printed by "vtdesigner version".
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Resolved(), Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", Resolved(), Commit, Date)
}
