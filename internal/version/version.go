// Package version provides build-time metadata for the id128 CLI.
//
// All variables have defaults and can be overridden at build time using -ldflags:
//
//	go build -ldflags "\
//	  -X 'github.com/slashdevops/id128/internal/version.Version=1.0.0' \
//	  -X 'github.com/slashdevops/id128/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'"
package version

import (
	"runtime"
	"runtime/debug"
)

var (
	// Version is the current version of the application
	Version = "0.0.0"

	// BuildDate is the date the application was built
	BuildDate = "1970-01-01T00:00:00Z"

	// GitCommit is the commit hash the application was built from
	GitCommit = ""

	// GitBranch is the branch the application was built from
	GitBranch = ""

	// BuildUser is the user that built the application
	BuildUser = ""
)

// Info is the build metadata reported by the CLI.
type Info struct {
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	GitBranch string `json:"gitBranch,omitempty" yaml:"gitBranch,omitempty"`
	BuildUser string `json:"buildUser,omitempty" yaml:"buildUser,omitempty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
	Platform  string `json:"platform" yaml:"platform"`
}

// Get returns the build metadata. When the ldflags were not set, the module
// version and checksum recorded by `go install` are used instead.
func Get() Info {
	info := Info{
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GitBranch: GitBranch,
		BuildUser: BuildUser,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	if Version != "0.0.0" {
		return info
	}

	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" {
		info.Version = bi.Main.Version
		info.BuildDate = ""
		if bi.Main.Sum != "" {
			info.GitCommit = bi.Main.Sum
		}
		info.GoVersion = bi.GoVersion
	}

	return info
}
