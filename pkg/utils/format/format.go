package format

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// exactSizeThreshold is the size from which the exact byte count is shown
// next to the humanized one. Below it both forms read the same.
const exactSizeThreshold = 1000

// Bytes returns a human-readable SI byte size (e.g. "1.2 kB").
func Bytes(b int64) string {
	if b < 0 {
		b = 0
	}
	return humanize.Bytes(uint64(b))
}

// FileSize returns Bytes(b), followed by the exact count in parentheses
// when b is at least 1000 (e.g. "1.2 kB (1234 B)").
func FileSize(b int64) string {
	if b < exactSizeThreshold {
		return Bytes(b)
	}
	return fmt.Sprintf("%s (%d B)", Bytes(b), b)
}
