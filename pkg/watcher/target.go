package watcher

import "time"

// RunSpec is what the watcher does when a change is seen.
type RunSpec struct {
	// Clear erases the terminal before each run.
	Clear bool
	// Command is passed to the shell verbatim.
	Command string
}

// Target is a watched path and the last modification time observed for it.
type Target struct {
	// Path is the path as given by the user.
	Path string
	// ModTime is only meaningful when Known is set.
	ModTime time.Time
	// Known is false until the path has been stat'ed successfully, and again
	// after a stat fails. The next successful stat of an unknown target
	// counts as a change.
	Known bool

	resolved string
}

// observe records mtime and reports whether it differs from what was known.
func (t *Target) observe(mtime time.Time) bool {
	if t.Known && mtime.Equal(t.ModTime) {
		return false
	}
	t.ModTime = mtime
	t.Known = true
	return true
}
