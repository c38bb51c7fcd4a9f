package fslib

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Usage describes the space of the filesystem holding a path, in bytes.
// Used and Free do not add up to Total on filesystems that reserve blocks
// for privileged users; Free is the space available to this process.
type Usage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// String renders the usage in SI units, e.g. "12 GB used of 50 GB (38 GB free)".
func (u Usage) String() string {
	return fmt.Sprintf("%s used of %s (%s free)",
		humanize.Bytes(u.Used), humanize.Bytes(u.Total), humanize.Bytes(u.Free))
}

// TreeSize returns the summed size in bytes of every regular file under
// path, including path itself when it is one. The walk is depth-first and
// synchronous; the first error stops it.
func TreeSize(path string) (int64, error) {
	var total int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// FormatSize renders a byte count in SI units ("42 B", "1.5 MB").
// Negative counts, such as the FileSize failure sentinel, render as
// "unknown".
func FormatSize(n int64) string {
	if n < 0 {
		return "unknown"
	}
	return humanize.Bytes(uint64(n))
}
