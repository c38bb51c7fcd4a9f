package fslib

import "os"

// Exists reports whether path resolves to an existing filesystem entry of
// any kind.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile reports whether path names a regular file. It is false when path
// does not exist or cannot be inspected, never an error.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path names a directory. It is false when path
// does not exist or cannot be inspected, never an error.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// FileSize returns the size of path in bytes, or -1 when path cannot be
// inspected. For directories the value is platform-defined, as with
// stat(2).
func FileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}
