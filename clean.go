package fslib

import "strings"

// Normalizer produces the canonical spelling of absolute paths under a
// Style. The zero value uses the platform style.
//
// Normalizer is stateless; a single value may be shared freely.
type Normalizer struct {
	// Style selects the path syntax. Nil means Local.
	Style Style
}

func (n Normalizer) style() Style {
	if n.Style == nil {
		return Local
	}
	return n.Style
}

// Clean returns the canonical form of an absolute path: empty and "."
// segments are removed, and a ".." segment cancels the segment before it.
// Climbing stops at the root, so leading ".." segments are dropped rather
// than escaping it. A trailing separator on the input is kept on the
// result, and a path whose segments all cancel renders as the bare root.
//
// Relative paths are returned unchanged; no normalization is defined for
// them. Clean never touches the filesystem.
func (n Normalizer) Clean(path string) string {
	style := n.style()
	if !style.IsAbs(path) {
		return path
	}

	sep := style.Separator()
	trailing := path[len(path)-1] == sep
	vol, rest := style.SplitVolume(path)

	segs := splitSegments(rest, sep)
	kept := segs[:0]
	for _, seg := range segs {
		switch seg {
		case ".":
		case "..":
			if len(kept) > 0 {
				kept = kept[:len(kept)-1]
			}
		default:
			kept = append(kept, seg)
		}
	}

	var b strings.Builder
	b.Grow(len(path))
	b.WriteString(vol)
	if len(kept) == 0 {
		b.WriteByte(sep)
		return b.String()
	}
	for _, seg := range kept {
		b.WriteByte(sep)
		b.WriteString(seg)
	}
	if trailing {
		b.WriteByte(sep)
	}
	return b.String()
}

// CleanPath returns the canonical form of path under the platform style.
// See Normalizer.Clean for the contract.
func CleanPath(path string) string {
	return Normalizer{}.Clean(path)
}

// splitSegments splits path on sep, discarding empty segments.
func splitSegments(path string, sep byte) []string {
	parts := strings.Split(path, string(sep))
	segs := parts[:0]
	for _, p := range parts {
		if p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}
