//go:build !linux && !darwin

package fsstat

func stat(path string) (Info, error) {
	return statPortable(path)
}
