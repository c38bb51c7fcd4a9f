//go:build windows

package fslib

import "golang.org/x/sys/windows"

// IsReadable reports whether the process may read path. Windows grants
// read access to any file the process can see, so this is an existence
// check, matching _access with mode 4.
func IsReadable(path string) bool {
	return Exists(path)
}

// IsWritable reports whether the process may write path. As with _access
// mode 2, this inspects the read-only attribute, not ACLs.
func IsWritable(path string) bool {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(p)
	if err != nil || attrs == windows.INVALID_FILE_ATTRIBUTES {
		return false
	}
	return attrs&windows.FILE_ATTRIBUTE_READONLY == 0
}
