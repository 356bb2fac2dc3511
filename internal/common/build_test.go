package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	origVersion, origCommit := Version, GitCommit
	t.Cleanup(func() {
		Version, GitCommit = origVersion, origCommit
	})

	Version, GitCommit = "1.4.0", "abcdef1234567890"
	assert.Equal(t, "1.4.0 (git: abcdef12)", GetVersion())

	GitCommit = "abc"
	assert.Equal(t, "1.4.0 (git: abc)", GetVersion())

	GitCommit = "unknown"
	assert.Equal(t, "1.4.0", GetVersion())

	GitCommit = ""
	assert.Equal(t, "1.4.0", GetVersion())
}
