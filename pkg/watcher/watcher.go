// Package watcher polls a fixed set of paths and runs a command whenever
// any of them is modified.
//
// Polling and command execution happen on the caller's goroutine, one after
// the other. Changes that land while the command runs are picked up by the
// next poll, so a burst of edits produces one run and at most one command is
// ever running.
package watcher

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
)

var (
	ErrNoPaths      = errors.New("no paths to watch")
	ErrEmptyCommand = errors.New("empty command")
)

// Watcher runs a RunSpec each time one of its targets changes.
type Watcher struct {
	targets []Target
	spec    RunSpec
	options watcherOptions
	runs    atomic.Int64
}

// New creates a watcher for paths and records their current modification
// times. Paths that cannot be stat'ed are logged and start with an unknown
// modification time, so creating them later triggers a run.
func New(paths []string, spec RunSpec, opts ...Option) (*Watcher, error) {
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}
	if strings.TrimSpace(spec.Command) == "" {
		return nil, ErrEmptyCommand
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	w := &Watcher{
		targets: make([]Target, 0, len(paths)),
		spec:    spec,
		options: options,
	}
	for _, path := range paths {
		resolved, err := homedir.Expand(path)
		if err != nil {
			w.options.log.WithField("path", path).WithError(err).Warn("cannot expand home directory")
			resolved = path
		}
		target := Target{Path: path, resolved: resolved}
		mtime, err := w.options.stat(resolved)
		if err != nil {
			w.options.log.WithField("path", path).WithError(err).Warn("cannot stat watched path")
		} else {
			target.observe(mtime)
		}
		w.targets = append(w.targets, target)
	}
	w.options.log.WithField("paths", len(w.targets)).Debug("watching")
	return w, nil
}

// Targets returns a snapshot of the watched targets.
func (w *Watcher) Targets() []Target {
	out := make([]Target, len(w.targets))
	copy(out, w.targets)
	return out
}

// Spec returns the RunSpec the watcher executes.
func (w *Watcher) Spec() RunSpec {
	return w.spec
}

// Runs returns how many times the command has been executed.
func (w *Watcher) Runs() int {
	return int(w.runs.Load())
}

// Run polls until ctx is cancelled, sleeping for the configured interval
// after every poll. It only returns ctx's error.
func (w *Watcher) Run(ctx context.Context) error {
	timer := time.NewTimer(w.options.interval)
	defer timer.Stop()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.Poll()
		timer.Reset(w.options.interval)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Poll checks every target once and, if any changed, runs the command.
// It reports whether the command ran.
func (w *Watcher) Poll() bool {
	if !w.scan() {
		return false
	}
	w.execute()
	return true
}

// scan updates every target and reports whether at least one changed.
// All targets are visited even after the first change so that each stored
// time is current when the command starts.
func (w *Watcher) scan() bool {
	changed := false
	for i := range w.targets {
		target := &w.targets[i]
		mtime, err := w.options.stat(target.resolved)
		if err != nil {
			if target.Known {
				w.options.log.WithField("path", target.Path).WithError(err).Warn("cannot stat watched path")
			}
			target.Known = false
			continue
		}
		if target.observe(mtime) {
			changed = true
		}
	}
	return changed
}

func (w *Watcher) execute() {
	log := w.options.log.WithField("command", w.spec.Command)
	if w.spec.Clear {
		if err := w.options.clear(w.options.out); err != nil {
			log.WithError(err).Warn("cannot clear terminal")
		}
	}
	code, err := w.options.runner.Run(w.spec.Command)
	w.runs.Add(1)
	switch {
	case err != nil:
		log.WithError(err).Warn("command did not run")
	case code != 0:
		log.WithField("status", code).Debug("command failed")
	}
	if _, err := io.WriteString(w.options.out, "\n"); err != nil {
		log.WithError(err).Warn("cannot write output")
	}
}
