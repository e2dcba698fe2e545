package fsstat

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

func stat(path string) (Info, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return Info{}, &os.PathError{Op: "stat", Path: path, Err: err}
	}

	return Info{
		Size:     st.Size,
		Birth:    timespec(st.Btim),
		HasBirth: true,
		Change:   timespec(st.Ctim),
		Modify:   timespec(st.Mtim),
		Access:   timespec(st.Atim),
	}, nil
}

func timespec(ts unix.Timespec) time.Time {
	return time.Unix(ts.Unix())
}
