package watcher

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rcarmo/go-fw/pkg/applets/procutil"
	"github.com/rcarmo/go-fw/pkg/core"
	"github.com/rcarmo/go-fw/pkg/core/fs"
	"github.com/rcarmo/go-fw/pkg/core/termutil"
)

// DefaultInterval is the time between two polls.
const DefaultInterval = time.Second

// StatFunc returns the modification time of path.
type StatFunc func(path string) (time.Time, error)

// ClearFunc erases the display w is attached to.
type ClearFunc func(w io.Writer) error

// Runner executes a command line and waits for it to finish.
type Runner interface {
	Run(command string) (int, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(command string) (int, error)

// Run calls f(command).
func (f RunnerFunc) Run(command string) (int, error) {
	return f(command)
}

// ShellRunner returns a Runner that executes commands through the shell
// with the given stdio attached.
func ShellRunner(stdio *core.Stdio) Runner {
	return RunnerFunc(func(command string) (int, error) {
		return procutil.RunShell(stdio, command)
	})
}

type watcherOptions struct {
	interval time.Duration
	stat     StatFunc
	runner   Runner
	clear    ClearFunc
	out      io.Writer
	log      logrus.FieldLogger
}

// Option configures a Watcher.
type Option func(o *watcherOptions)

func defaultOptions() watcherOptions {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)
	return watcherOptions{
		interval: DefaultInterval,
		stat:     fs.ModTime,
		runner:   ShellRunner(core.DefaultStdio()),
		clear:    termutil.Clear,
		out:      os.Stdout,
		log:      quiet,
	}
}

// WithInterval sets the polling period. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(o *watcherOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithStat replaces the modification time query.
func WithStat(stat StatFunc) Option {
	return func(o *watcherOptions) {
		o.stat = stat
	}
}

// WithRunner replaces the command executor.
func WithRunner(r Runner) Option {
	return func(o *watcherOptions) {
		o.runner = r
	}
}

// WithClearer replaces the terminal clear operation.
func WithClearer(clear ClearFunc) Option {
	return func(o *watcherOptions) {
		o.clear = clear
	}
}

// WithOutput sets where the clear sequence and the blank line after each
// run are written.
func WithOutput(w io.Writer) Option {
	return func(o *watcherOptions) {
		o.out = w
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *watcherOptions) {
		o.log = log
	}
}
