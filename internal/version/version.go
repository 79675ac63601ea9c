package version

import (
	"runtime"

	promversion "github.com/prometheus/common/version"
)

// Set with -ldflags "-X volteryde-gate/internal/version.Version=...".
var (
	Version   string = "dev"
	GitCommit string = "unknown"
	BuildTime string = "unknown"
)

func init() {
	promversion.Version = Version
	promversion.Revision = GitCommit
	promversion.BuildDate = BuildTime
}

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return Version + " (commit: " + GitCommit + ", built: " + BuildTime + ", " + runtime.Version() + ")"
}

// Info returns the build fields for structured logs.
func Info() []any {
	return []any{"version", Version, "commit", GitCommit, "build_time", BuildTime}
}
