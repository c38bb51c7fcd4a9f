//go:build !windows

package fslib

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// CreatePipe creates a named pipe (FIFO) at path with mode 0666, subject
// to umask. If there is an error, it will be of type *fs.PathError.
func CreatePipe(path string) error {
	if err := unix.Mkfifo(path, 0o666); err != nil {
		return &fs.PathError{Op: "mkfifo", Path: path, Err: err}
	}
	return nil
}
