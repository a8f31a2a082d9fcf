// Package version reports how the swatch binary was built.
//
// Release builds set the variables below with
//
//	-ldflags "-X github.com/jmylchreest/swatch/internal/version.Version=x.y.z"
//
// (and likewise Commit and Date). Builds without them fall back to the VCS
// stamp the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// String describes the build on one line.
func String() string {
	commit, date := vcsStamp()

	var details []string
	if commit != "" {
		details = append(details, "commit: "+shortCommit(commit))
	}
	if date != "" {
		details = append(details, "built: "+date)
	}
	details = append(details, runtime.Version(), runtime.GOOS+"/"+runtime.GOARCH)

	return fmt.Sprintf("swatch version %s (%s)", Version, strings.Join(details, ", "))
}

// vcsStamp returns Commit and Date, filling blanks from the embedded build info.
func vcsStamp() (commit, date string) {
	commit, date = Commit, Date
	if commit != "" && date != "" {
		return commit, date
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, date
	}
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && commit == "":
			commit = s.Value
		case s.Key == "vcs.time" && date == "":
			date = s.Value
		}
	}
	return commit, date
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
