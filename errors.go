package fslib

import (
	"errors"
	"io/fs"
)

var (
	// ErrNotExist is returned when a file or directory does not exist.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrUnsupported is returned when an operation is not available on the
	// current platform. For example, named pipes and mount-point checks on
	// Windows.
	ErrUnsupported = errors.New("operation not supported")

	// ErrNotAbsolute is returned when an operation that requires an
	// absolute path is given a relative one.
	ErrNotAbsolute = errors.New("path is not absolute")

	// ErrNotDir is returned when a path component exists but is not a
	// directory.
	ErrNotDir = errors.New("not a directory")
)
