// Package version reports which build of skillgate is running. Values are
// stamped in at release time; a plain source build reports "dev".
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Overridden by the release build, e.g.
//
//	go build -ldflags "-X github.com/andywolf/skillgate/internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Short returns just the version tag.
func Short() string {
	return Version
}

// Info is the one-line summary printed by `skillgate version`.
func Info() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("skillgate %s (commit %s, built %s, %s)",
		Version, commit, BuildDate, runtime.Version())
}

// Full is the multi-line summary printed by `skillgate version --verbose`.
func Full() string {
	var b strings.Builder
	fmt.Fprintf(&b, "skillgate %s\n", Version)
	fmt.Fprintf(&b, "  commit:   %s\n", Commit)
	fmt.Fprintf(&b, "  built:    %s\n", BuildDate)
	fmt.Fprintf(&b, "  go:       %s\n", runtime.Version())
	fmt.Fprintf(&b, "  platform: %s/%s", runtime.GOOS, runtime.GOARCH)
	return b.String()
}
