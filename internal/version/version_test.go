package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersionInfo(t *testing.T) {
	oldVersion, oldBuild, oldCommit := Version, BuildTime, GitCommit
	t.Cleanup(func() { Version, BuildTime, GitCommit = oldVersion, oldBuild, oldCommit })

	Version = "1.2.0"

	BuildTime, GitCommit = "unknown", "unknown"
	assert.Equal(t, "1.2.0", GetFullVersionInfo())

	GitCommit = "abc123"
	assert.Equal(t, "1.2.0 (commit abc123)", GetFullVersionInfo())

	BuildTime = "2024-03-05"
	assert.Equal(t, "1.2.0 (built 2024-03-05, commit abc123)", GetFullVersionInfo())
}

func TestGetVersionInfoDev(t *testing.T) {
	assert.NotEmpty(t, GetVersionInfo())
}
