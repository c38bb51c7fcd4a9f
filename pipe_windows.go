//go:build windows

package fslib

import "io/fs"

// CreatePipe is not available on Windows; filesystem FIFOs are a POSIX
// concept. It always returns ErrUnsupported inside a *fs.PathError.
func CreatePipe(path string) error {
	return &fs.PathError{Op: "mkfifo", Path: path, Err: ErrUnsupported}
}
