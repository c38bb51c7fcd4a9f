package fslib

import "strings"

// IsRemoteAddress reports whether addr looks like a remote location
// rather than a local path: it starts with "//", or with an alphanumeric
// URL scheme other than "file" followed by "://". So "http://x" and
// "//server/share" are remote while "file:///tmp/x" and "/local/path" are
// not. This is a character scan, not a URL parse; the scheme comparison
// is case-sensitive.
func IsRemoteAddress(addr string) bool {
	if strings.HasPrefix(addr, "//") {
		return true
	}
	n := 0
	for n < len(addr) && isAlphanumeric(addr[n]) {
		n++
	}
	if n == 0 || !strings.HasPrefix(addr[n:], "://") {
		return false
	}
	return addr[:n] != "file"
}

func isAlphanumeric(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
