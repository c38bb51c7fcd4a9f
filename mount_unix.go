//go:build !windows

package fslib

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// IsMount reports whether path is a mount point: its device number
// differs from its parent's, or it is its own parent (the root). Symlinks
// are resolved by the underlying stat calls. If there is an error, it
// will be of type *fs.PathError.
func IsMount(path string) (bool, error) {
	parent := ParentPath(CleanPath(path))
	if parent == "" {
		if IsRoot(path) {
			parent = path
		} else {
			parent = "."
		}
	}

	var st, pst unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, &fs.PathError{Op: "stat", Path: path, Err: err}
	}
	if err := unix.Stat(parent, &pst); err != nil {
		return false, &fs.PathError{Op: "stat", Path: parent, Err: err}
	}

	if uint64(st.Dev) != uint64(pst.Dev) {
		return true, nil
	}
	return st.Ino == pst.Ino, nil
}
