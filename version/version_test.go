package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetFullVersion(t *testing.T) {
	defer func(v, c, d string) { Version, GitCommit, BuildDate = v, c, d }(Version, GitCommit, BuildDate)

	Version, GitCommit, BuildDate = "dev", "unknown", "unknown"
	assert.Equal(t, "dev", GetFullVersion())

	GitCommit = "abc123"
	assert.Equal(t, "dev (abc123)", GetFullVersion())

	Version, BuildDate = "1.2.0", "2026-10-01"
	assert.Equal(t, "1.2.0 (abc123, 2026-10-01)", GetFullVersion())
	assert.Equal(t, "1.2.0", GetVersion())
}
