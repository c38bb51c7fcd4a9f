package fslib

// Style describes the path syntax of an operating-system family. It
// answers exactly the three questions the path algorithms ask: which byte
// separates segments, what makes a path absolute, and how to split off a
// volume prefix.
//
// The two implementations, PosixStyle and WindowsStyle, are stateless
// zero-sized types. Local is the Style of the platform the library was
// built for; all package-level path functions use it.
type Style interface {
	// Separator returns the path separator byte.
	Separator() byte

	// IsAbs reports whether path is absolute under this style.
	IsAbs(path string) bool

	// SplitVolume splits path into its volume prefix and the remainder.
	// The volume is empty for styles without volumes and for paths that
	// carry none.
	SplitVolume(path string) (vol, rest string)
}

// PosixStyle is the path syntax of POSIX systems: '/' separates segments,
// absolute paths start with '/', and there are no volume prefixes.
type PosixStyle struct{}

// Separator returns '/'.
func (PosixStyle) Separator() byte { return '/' }

// IsAbs reports whether path starts with '/'.
func (PosixStyle) IsAbs(path string) bool {
	return len(path) > 0 && path[0] == '/'
}

// SplitVolume returns ("", path); POSIX paths carry no volume prefix.
func (PosixStyle) SplitVolume(path string) (vol, rest string) {
	return "", path
}

// WindowsStyle is the path syntax of Windows systems: '\' separates
// segments and absolute paths start with an ASCII drive letter followed
// by ':' ("C:"). Forward slashes are ordinary characters under this
// style.
type WindowsStyle struct{}

// Separator returns '\'.
func (WindowsStyle) Separator() byte { return '\\' }

// IsAbs reports whether path starts with a drive letter and ':'.
func (WindowsStyle) IsAbs(path string) bool {
	return len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':'
}

// SplitVolume splits `C:\x` into ("C:", `\x`). Paths without a drive
// prefix are returned whole.
func (WindowsStyle) SplitVolume(path string) (vol, rest string) {
	if len(path) >= 2 && isDriveLetter(path[0]) && path[1] == ':' {
		return path[:2], path[2:]
	}
	return "", path
}

func isDriveLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

var (
	_ Style = PosixStyle{}
	_ Style = WindowsStyle{}
)
