package fslib

import "strings"

// ProbeFunc reports whether a path names an existing regular file.
type ProbeFunc func(path string) bool

// Resolver computes relative paths between absolute paths under a Style.
// The zero value uses the platform style and probes the local filesystem
// through IsFile.
//
// The probe decides whether the origin of a computation is a file, in
// which case navigation starts at its containing directory. Injecting a
// probe makes Rel a pure function for testing and for reasoning about
// paths that do not exist locally.
type Resolver struct {
	// Style selects the path syntax. Nil means Local.
	Style Style

	// Probe reports whether a path names a regular file. Nil means
	// IsFile.
	Probe ProbeFunc
}

func (r Resolver) style() Style {
	if r.Style == nil {
		return Local
	}
	return r.Style
}

func (r Resolver) probe() ProbeFunc {
	if r.Probe == nil {
		return IsFile
	}
	return r.Probe
}

// Rel returns the relative path that reaches to when walked from from's
// directory.
//
// Both arguments must be absolute; otherwise, and for paths on different
// volumes, Rel returns "". A to that does not end in a separator names a
// file, and its final segment is re-appended after the directory walk. A
// from that the probe identifies as a regular file contributes only its
// containing directory. Identical directory paths yield "".
//
// When from is not a prefix of to, the climb toward the common prefix is
// expressed as a single ".." segment regardless of how many levels
// actually diverge. Callers needing exact multi-level climbs should use
// path/filepath. On Windows-style paths the result keeps from's volume
// prefix.
func (r Resolver) Rel(from, to string) string {
	style := r.style()
	if !style.IsAbs(from) || !style.IsAbs(to) {
		return ""
	}

	fromVol, fromRest := style.SplitVolume(from)
	toVol, toRest := style.SplitVolume(to)
	if fromVol != "" || toVol != "" {
		if fromVol == "" || toVol == "" || fromVol[0] != toVol[0] {
			return ""
		}
	}

	sep := style.Separator()
	toIsFile := len(toRest) > 0 && toRest[len(toRest)-1] != sep

	fromSegs := splitSegments(fromRest, sep)
	toSegs := splitSegments(toRest, sep)

	var fileName string
	if toIsFile && len(toSegs) > 0 {
		fileName = toSegs[len(toSegs)-1]
		toSegs = toSegs[:len(toSegs)-1]
	}
	if len(fromSegs) > 0 && r.probe()(from) {
		fromSegs = fromSegs[:len(fromSegs)-1]
	}

	k := commonPrefixLen(fromSegs, toSegs)

	var b strings.Builder
	b.WriteString(fromVol)
	if len(fromSegs) >= len(toSegs) && k < len(fromSegs) {
		b.WriteString("..")
		b.WriteByte(sep)
	}
	for _, seg := range toSegs[k:] {
		b.WriteString(seg)
		b.WriteByte(sep)
	}
	b.WriteString(fileName)
	return b.String()
}

// RelPath returns the relative path from from's directory to to under the
// platform style, probing the local filesystem. See Resolver.Rel for the
// contract.
func RelPath(from, to string) string {
	return Resolver{}.Rel(from, to)
}

// commonPrefixLen returns the number of leading segments a and b share.
func commonPrefixLen(a, b []string) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}
