package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, PathExists(file))
	assert.True(t, PathExists(dir))
	assert.False(t, PathExists(filepath.Join(dir, "absent.txt")))
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, DirExists(dir))
	assert.False(t, DirExists(file))
	assert.False(t, DirExists(filepath.Join(dir, "missing")))
}

func TestExpandUser(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, ExpandUser("~"))
	assert.Equal(t, filepath.Join(home, "miniconda3"), ExpandUser("~/miniconda3"))
	assert.Equal(t, "/opt/miniconda3", ExpandUser("/opt/miniconda3"))
	assert.Equal(t, "relative/path", ExpandUser("relative/path"))
}
