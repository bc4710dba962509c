// Command formbridge hosts survey form pages and bridges their state.
package main

import (
	"runtime"

	"github.com/bnema/formbridge/internal/cli/cmd"
	"github.com/bnema/formbridge/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
