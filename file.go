package fslib

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultFileMode is the permission bits given to files created by
// CopyFile and WriteFile, before umask.
const DefaultFileMode fs.FileMode = 0o666

// copyChunkSize is the buffer size CopyFile streams through.
const copyChunkSize = 4096

// maxTextLine caps the line length ReadTextFile accepts.
const maxTextLine = 16 << 20

// CopyFile copies the contents of the file at src into dst, creating or
// truncating dst with DefaultFileMode. The copy streams through a 4 KiB
// buffer; permissions and times are not carried over.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, DefaultFileMode)
	if err != nil {
		return err
	}

	buf := make([]byte, copyChunkSize)
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			if _, werr := out.Write(buf[:n]); werr != nil {
				out.Close()
				return werr
			}
		}
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			out.Close()
			return rerr
		}
	}
	return out.Close()
}

// ReadTextFile reads the file at path as text: lines are reassembled with
// '\n' regardless of their original terminators, so CRLF input comes back
// LF-only and a non-empty final line gains a terminator. Use os.ReadFile
// for byte-exact content.
func ReadTextFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	if size := FileSize(path); size > 0 {
		b.Grow(int(size))
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(nil, maxTextLine)
	for scanner.Scan() {
		b.WriteString(scanner.Text())
		b.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteFile writes data to path verbatim, creating the file with perm
// (before umask) or truncating an existing one. Pass DefaultFileMode for
// the usual bits.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	return os.WriteFile(path, data, perm)
}

// Remove deletes the file or empty directory at path. If there is an
// error, it will be of type *fs.PathError.
func Remove(path string) error {
	return os.Remove(path)
}

// Rename moves oldpath to newpath, replacing a newpath file that already
// exists. If there is an error, it will be of type *os.LinkError.
func Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}
