package fslib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	require.True(t, Exists(dir))
	require.True(t, Exists(file))
	require.False(t, Exists(filepath.Join(dir, "missing")))
}

func TestIsFileIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))
	missing := filepath.Join(dir, "missing")

	require.True(t, IsFile(file))
	require.False(t, IsFile(dir))
	require.False(t, IsFile(missing))

	require.True(t, IsDir(dir))
	require.False(t, IsDir(file))
	require.False(t, IsDir(missing))
}

func TestFileSize(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.bin")
	require.NoError(t, os.WriteFile(file, make([]byte, 1234), 0o644))

	require.Equal(t, int64(1234), FileSize(file))
	require.Equal(t, int64(-1), FileSize(filepath.Join(dir, "missing")))
}
