//go:build windows

package fslib

import (
	"io/fs"

	"golang.org/x/sys/windows"
)

// DiskUsage returns the space of the volume holding path, per
// GetDiskFreeSpaceEx. Free counts the bytes available to the calling
// process, which quotas may reduce below the volume's free total. If
// there is an error, it will be of type *fs.PathError.
func DiskUsage(path string) (Usage, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Usage{}, &fs.PathError{Op: "getdiskfreespace", Path: path, Err: err}
	}

	var available, total, free uint64
	if err := windows.GetDiskFreeSpaceEx(p, &available, &total, &free); err != nil {
		return Usage{}, &fs.PathError{Op: "getdiskfreespace", Path: path, Err: err}
	}

	return Usage{
		Total: total,
		Used:  total - free,
		Free:  available,
	}, nil
}
