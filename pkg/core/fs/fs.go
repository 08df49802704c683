// Package fs provides the filesystem queries applets rely on.
// Applets should use this package instead of direct os calls.
package fs

import (
	"os"
	"time"

	"github.com/pkg/errors"
)

// Stat returns file info.
func Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Chtimes updates atime/mtime for a path.
func Chtimes(path string, atime time.Time, mtime time.Time) error {
	return os.Chtimes(path, atime, mtime)
}

// ModTime returns the modification time of path, following symlinks.
func ModTime(path string) (time.Time, error) {
	mtime, err := modTime(path)
	if err != nil {
		return time.Time{}, errors.Wrap(err, "stat")
	}
	return mtime, nil
}
