//go:build !windows

package fslib

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// DiskUsage returns the space of the filesystem holding path, per
// statfs(2). Free counts the blocks available to unprivileged processes.
// If there is an error, it will be of type *fs.PathError.
func DiskUsage(path string) (Usage, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return Usage{}, &fs.PathError{Op: "statfs", Path: path, Err: err}
	}

	// Field types vary across unixes; go through uint64 explicitly.
	bsize := uint64(st.Bsize)
	total := uint64(st.Blocks) * bsize
	return Usage{
		Total: total,
		Used:  total - uint64(st.Bfree)*bsize,
		Free:  uint64(st.Bavail) * bsize,
	}, nil
}
