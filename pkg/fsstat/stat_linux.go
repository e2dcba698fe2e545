package fsstat

import (
	"errors"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func stat(path string) (Info, error) {
	var sx unix.Statx_t
	err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BASIC_STATS|unix.STATX_BTIME, &sx)
	if errors.Is(err, unix.ENOSYS) {
		// Kernels before 4.11 have no statx.
		return statPortable(path)
	}
	if err != nil {
		return Info{}, &os.PathError{Op: "statx", Path: path, Err: err}
	}

	info := Info{
		Size:   int64(sx.Size),
		Change: statxTime(sx.Ctime),
		Modify: statxTime(sx.Mtime),
		Access: statxTime(sx.Atime),
	}
	if sx.Mask&unix.STATX_BTIME != 0 {
		info.Birth = statxTime(sx.Btime)
		info.HasBirth = true
	}
	return info, nil
}

func statxTime(ts unix.StatxTimestamp) time.Time {
	return time.Unix(ts.Sec, int64(ts.Nsec))
}
