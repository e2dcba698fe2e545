package fsstat

import "os"

// statPortable only knows the modification time, so it stands in for the
// change and access times as well.
func statPortable(path string) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, err
	}

	mtime := fi.ModTime()
	return Info{
		Size:   fi.Size(),
		Change: mtime,
		Modify: mtime,
		Access: mtime,
	}, nil
}
