// Package core provides shared functionality for fw applets.
package core

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Exit codes following POSIX conventions
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Stdio holds the standard I/O streams for an applet.
// This allows for easy testing by injecting mock streams.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// DefaultStdio returns Stdio configured with os.Stdin, os.Stdout, os.Stderr.
func DefaultStdio() *Stdio {
	return &Stdio{
		In:  os.Stdin,
		Out: os.Stdout,
		Err: os.Stderr,
	}
}

// Errorf writes a formatted error message to stderr.
func (s *Stdio) Errorf(format string, args ...any) {
	fmt.Fprintf(s.Err, format, args...)
}

// Print writes a message to stdout.
func (s *Stdio) Print(args ...any) {
	fmt.Fprint(s.Out, args...)
}

// NewLogger returns a diagnostics logger writing to the applet's stderr.
// Entries carry the applet name and no timestamp.
func NewLogger(stdio *Stdio, applet string) *logrus.Entry {
	log := &logrus.Logger{
		Out:   stdio.Err,
		Level: logrus.InfoLevel,
		Formatter: &logrus.TextFormatter{
			DisableTimestamp: true,
			DisableColors:    true,
		},
		Hooks:    make(logrus.LevelHooks),
		ExitFunc: os.Exit,
	}
	return log.WithField("applet", applet)
}
