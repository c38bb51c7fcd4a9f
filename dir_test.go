package fslib

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListDir(t *testing.T) {
	dir := t.TempDir()
	sep := string(Local.Separator())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	children, err := ListDir(dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		dir + sep + "a.txt",
		dir + sep + "b.txt",
		dir + sep + "sub",
	}, children)
}

func TestListDir_TrailingSeparator(t *testing.T) {
	dir := t.TempDir()
	sep := string(Local.Separator())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "only"), nil, 0o644))

	children, err := ListDir(dir + sep)
	require.NoError(t, err)
	require.Equal(t, []string{dir + sep + "only"}, children)
}

func TestListDir_Missing(t *testing.T) {
	_, err := ListDir(filepath.Join(t.TempDir(), "missing"))
	require.ErrorIs(t, err, ErrNotExist)
}

func TestIsEmptyDir(t *testing.T) {
	dir := t.TempDir()
	require.True(t, IsEmptyDir(dir))

	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	require.False(t, IsEmptyDir(dir))

	require.False(t, IsEmptyDir(file), "regular file is not an empty directory")
	require.False(t, IsEmptyDir(filepath.Join(dir, "missing")))
}

func TestMkdir(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "made")

	require.NoError(t, Mkdir(target, DefaultDirMode))
	require.True(t, IsDir(target))

	require.ErrorIs(t, Mkdir(target, DefaultDirMode), ErrExist)
	require.Error(t, Mkdir(filepath.Join(dir, "no", "parent"), DefaultDirMode))
}

func TestCreatePath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "x", "y", "z")

	require.NoError(t, CreatePath(target))
	require.True(t, IsDir(target))

	// over existing directories the walk is a no-op
	require.NoError(t, CreatePath(target))
}

func TestCreatePath_FileInTheWay(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "x")
	require.NoError(t, os.WriteFile(blocker, []byte("flat"), 0o644))

	err := CreatePath(filepath.Join(dir, "x", "y", "z"))
	require.ErrorIs(t, err, ErrNotDir)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, blocker, pathErr.Path)

	require.False(t, Exists(filepath.Join(dir, "x", "y")), "nothing below the blocker is created")
}

func TestCreatePath_Relative(t *testing.T) {
	err := CreatePath(filepath.Join("rel", "path"))
	require.ErrorIs(t, err, ErrNotAbsolute)

	var pathErr *fs.PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, filepath.Join("rel", "path"), pathErr.Path)
}
