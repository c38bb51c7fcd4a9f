// Package fslib provides small, static filesystem utilities with uniform
// behavior across POSIX and Windows path syntax.
//
// The core of the package is pure path manipulation: canonicalizing
// absolute paths (CleanPath) and computing relative paths between two
// absolute paths (RelPath). Everything else is a thin, synchronous wrapper
// over one OS primitive: existence and type checks, permission probes,
// directory listing and creation, file copy/read/write, and space
// accounting.
//
// # Path Styles
//
// Platform differences are confined to the Style interface: the separator
// byte, the absolute-path predicate, and volume-prefix parsing ("C:" on
// Windows). PosixStyle and WindowsStyle are the two stateless
// implementations; Local is the style of the platform the library was
// built for. Package-level functions use Local. Code that must reason
// about a foreign syntax constructs a Normalizer or Resolver with an
// explicit Style:
//
//	n := fslib.Normalizer{Style: fslib.WindowsStyle{}}
//	n.Clean(`C:\a\.\b\..\c\`) // `C:\a\c\`
//
// # Core Operations
//
// CleanPath collapses empty, "." and ".." segments of an absolute path
// while preserving the trailing-separator marker. Relative inputs are
// returned unchanged.
//
// RelPath expresses how to reach one absolute path from another's
// directory. When the origin names an existing regular file, navigation
// starts at its containing directory; Resolver accepts an injectable
// probe so this check is testable without a filesystem.
//
// # Errors
//
// Predicates (Exists, IsFile, IsReadable, ...) return plain booleans and
// swallow the cause. Operations return errors wrapping the underlying OS
// error, so errors.Is(err, fslib.ErrNotExist) works. Multi-step
// operations such as CreatePath report the exact path that failed through
// *fs.PathError. Operations a platform cannot provide return
// ErrUnsupported.
package fslib
