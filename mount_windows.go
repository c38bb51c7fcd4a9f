//go:build windows

package fslib

import "io/fs"

// IsMount is not implemented on Windows, where mount semantics (drive
// letters, junctions, volume mount points) do not reduce to a device
// comparison. It always returns ErrUnsupported inside a *fs.PathError.
func IsMount(path string) (bool, error) {
	return false, &fs.PathError{Op: "stat", Path: path, Err: ErrUnsupported}
}
