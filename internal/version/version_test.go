package version

import (
	"strings"
	"testing"

	promversion "github.com/prometheus/common/version"
	"github.com/stretchr/testify/assert"
)

func TestBuildInfoIsSharedWithPrometheus(t *testing.T) {
	assert.Equal(t, Version, promversion.Version)
	assert.Equal(t, GitCommit, promversion.Revision)
	assert.Equal(t, BuildTime, promversion.BuildDate)
}

func TestGetFullVersion(t *testing.T) {
	full := GetFullVersion()
	assert.True(t, strings.HasPrefix(full, GetVersion()+" (commit: "))
	assert.Contains(t, full, "built: "+BuildTime)
}

func TestInfo(t *testing.T) {
	assert.Equal(t, []any{"version", Version, "commit", GitCommit, "build_time", BuildTime}, Info())
}
