// Package build provides domain entities for build information.
package build

import "strings"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Short returns "version (commit)", leaving out unknown parts.
func (i Info) Short() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	commit := strings.TrimSpace(i.Commit)
	if len(commit) > 7 {
		commit = commit[:7]
	}
	if commit == "" || commit == "unknown" {
		return version
	}
	return version + " (" + commit + ")"
}

// RepoURL returns the repository URL.
func RepoURL() string {
	return "https://github.com/bnema/formbridge"
}
