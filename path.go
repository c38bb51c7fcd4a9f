package fslib

import "strings"

// IsAbs reports whether path is absolute under the platform style.
func IsAbs(path string) bool {
	return Local.IsAbs(path)
}

// BaseName returns the last segment of path. A single trailing separator
// is ignored, so BaseName("/a/b/c/") is "c". The root and the empty
// string have no base name.
func BaseName(path string) string {
	return baseName(path, Local.Separator())
}

func baseName(path string, sep byte) string {
	if len(path) > 0 && path[len(path)-1] == sep {
		path = path[:len(path)-1]
	}
	if i := strings.LastIndexByte(path, sep); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Ext returns the extension of path's base name, from its final '.' to
// the end: Ext("/a/b/c.tar.gz") is ".gz". It is empty when the base name
// contains no dot. A trailing separator is ignored first, so
// separator-terminated paths work too.
func Ext(path string) string {
	base := BaseName(path)
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		return base[i:]
	}
	return ""
}

// ParentPath returns path with its last segment removed. The result keeps
// its trailing separator: ParentPath("/a/b/c") is "/a/b/". A trailing
// separator on the input is ignored, so "/a/b/c/" has the same parent as
// "/a/b/c". The result is empty when no separator remains.
func ParentPath(path string) string {
	return parentPath(path, Local.Separator())
}

func parentPath(path string, sep byte) string {
	if len(path) > 0 && path[len(path)-1] == sep {
		path = path[:len(path)-1]
	}
	if i := strings.LastIndexByte(path, sep); i >= 0 {
		return path[:i+1]
	}
	return ""
}

// IsRoot reports whether path names the root of its volume once cleaned:
// IsRoot("/") is true, as is IsRoot("C:\\") under the Windows style.
// Relative paths are never the root.
func IsRoot(path string) bool {
	return isRoot(path, Local)
}

func isRoot(path string, style Style) bool {
	if !style.IsAbs(path) {
		return false
	}
	cleaned := Normalizer{Style: style}.Clean(path)
	_, rest := style.SplitVolume(cleaned)
	return len(rest) == 1 && rest[0] == style.Separator()
}

// Contains reports whether target lies under base, or equals it, once
// both are cleaned. Volumes and segments must match exactly; relative
// inputs are never contained. Contains never touches the filesystem, so
// symlinks are not resolved.
func Contains(base, target string) bool {
	return contains(base, target, Local)
}

func contains(base, target string, style Style) bool {
	if !style.IsAbs(base) || !style.IsAbs(target) {
		return false
	}
	n := Normalizer{Style: style}
	sep := style.Separator()
	baseVol, baseRest := style.SplitVolume(n.Clean(base))
	targetVol, targetRest := style.SplitVolume(n.Clean(target))
	if baseVol != targetVol {
		return false
	}
	baseSegs := splitSegments(baseRest, sep)
	targetSegs := splitSegments(targetRest, sep)
	if len(baseSegs) > len(targetSegs) {
		return false
	}
	return commonPrefixLen(baseSegs, targetSegs) == len(baseSegs)
}
