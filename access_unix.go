//go:build !windows

package fslib

import "golang.org/x/sys/unix"

// IsReadable reports whether the process may read path, per access(2)
// with R_OK. The check uses the real, not effective, user and group IDs.
func IsReadable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}

// IsWritable reports whether the process may write path, per access(2)
// with W_OK. The check uses the real, not effective, user and group IDs.
func IsWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
