// Package fsstat reads the filesystem metadata shown for a single entry.
package fsstat

import "time"

// Info holds the size and timestamps of a filesystem entry.
type Info struct {
	Size int64

	// Birth is the creation time. HasBirth is false when the platform or
	// filesystem does not record it.
	Birth    time.Time
	HasBirth bool

	Change time.Time
	Modify time.Time
	Access time.Time
}

// Stat returns metadata for path, following symlinks. Errors are
// *os.PathError values, so errors.Is(err, fs.ErrNotExist) works.
func Stat(path string) (Info, error) {
	return stat(path)
}
