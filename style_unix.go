//go:build !windows

package fslib

// Local is the path style of the platform the library was built for.
var Local Style = PosixStyle{}
