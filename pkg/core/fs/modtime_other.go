//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd

package fs

import "time"

func modTime(path string) (time.Time, error) {
	info, err := Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
