package fslib

import (
	"io"
	"io/fs"
	"os"
)

// DefaultDirMode is the permission bits CreatePath gives new directories,
// before umask.
const DefaultDirMode fs.FileMode = 0o775

// ListDir returns the full paths of path's children: path joined with
// each entry name by the platform separator. The "." and ".."
// pseudo-entries never appear, and entries are sorted by name. The
// listing is a snapshot taken at call time.
//
// If there is an error, it will be of type *fs.PathError.
func ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	sep := Local.Separator()
	prefix := path
	if len(prefix) == 0 || prefix[len(prefix)-1] != sep {
		prefix += string(sep)
	}

	children := make([]string, 0, len(entries))
	for _, entry := range entries {
		children = append(children, prefix+entry.Name())
	}
	return children, nil
}

// IsEmptyDir reports whether path is a directory containing no entries.
// It is false when path is not a directory or cannot be read.
func IsEmptyDir(path string) bool {
	dir, err := os.Open(path)
	if err != nil {
		return false
	}
	defer dir.Close()

	_, err = dir.Readdirnames(1)
	return err == io.EOF
}

// Mkdir creates a single directory with the given permission bits
// (subject to umask); the parent must already exist. If there is an
// error, it will be of type *fs.PathError.
func Mkdir(path string, perm fs.FileMode) error {
	return os.Mkdir(path, perm)
}

// CreatePath creates every missing directory along an absolute path,
// top-down, with DefaultDirMode. Prefixes that already exist as
// directories are kept. The walk stops at the first prefix that exists as
// a non-directory or fails to create; the returned *fs.PathError names
// that prefix, and directories created before it remain in place. A
// relative path is rejected with ErrNotAbsolute.
func CreatePath(path string) error {
	if !IsAbs(path) {
		return &fs.PathError{Op: "createpath", Path: path, Err: ErrNotAbsolute}
	}

	sep := Local.Separator()
	vol, rest := Local.SplitVolume(path)

	prefix := vol
	for _, seg := range splitSegments(rest, sep) {
		prefix += string(sep) + seg
		if Exists(prefix) {
			if !IsDir(prefix) {
				return &fs.PathError{Op: "createpath", Path: prefix, Err: ErrNotDir}
			}
			continue
		}
		if err := os.Mkdir(prefix, DefaultDirMode); err != nil {
			return err
		}
	}
	return nil
}
