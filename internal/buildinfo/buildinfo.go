// Package buildinfo carries version stamps injected with -ldflags, e.g.
//
//	go build -ldflags "-X spherenav/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

// Name is the program name shown in logs and -version output.
const Name = "spherenav"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns the version, or the commit for untagged builds.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// String is the full -version line.
func String() string {
	return fmt.Sprintf("%s %s (commit %s, built %s)", Name, Short(), Commit, Date)
}
