// Package version exposes build metadata for profkit binaries.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Version is the release version, set via ldflags. Empty for untagged builds.
var Version string

// Revision is the git commit revision recorded by the Go toolchain, suffixed
// with "-dirty" when the working tree was modified.
var Revision = getRevision()

// String formats the version, revision, and toolchain for --version output.
func String() string {
	v := Version
	if v == "" {
		v = "devel"
	}

	return fmt.Sprintf("%s (%s) %s %s/%s", v, Revision, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

func getRevision() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	rev := "unknown"
	modified := false

	for _, s := range buildInfo.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		rev += "-dirty"
	}

	return rev
}
