package main

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBuildInfo(t *testing.T, v, c, d string) {
	t.Helper()
	oldVersion, oldCommit, oldDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = oldVersion, oldCommit, oldDate
	})
	version, commit, date = v, c, d
}

func TestVersionCommand(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef1", "2026-02-14")

	out, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, out, "flexforge 1.2.3 ("+runtime.Version())
	assert.Contains(t, out, "commit: abcdef1")
	assert.Contains(t, out, "built: 2026-02-14")
}

func TestVersionCommandShort(t *testing.T) {
	setBuildInfo(t, "1.2.3", "abcdef1", "2026-02-14")

	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestVersionCommandRejectsArgs(t *testing.T) {
	_, err := execute(t, "version", "extra")
	assert.Error(t, err)
}
