//go:build !js && !wasm && !wasip1

// Package fw implements the fw (file watch) command.
package fw

import (
	"context"

	"github.com/rcarmo/go-fw/pkg/core"
	"github.com/rcarmo/go-fw/pkg/watcher"
)

const usage = `fw - File Watch
Usage: fw [-c] <watch>... -- <command>

Options:
	-c, --clear	clear before executing the command

Arguments:
	<watch> 	files / directories to monitor for updates
	<command> 	command to execute when updates are detected
Example:
	fw -c main.c -- cc main.c -o main

`

// Run executes the fw command with the given arguments.
//
// fw polls every watched path once a second and runs the command through
// the shell whenever a modification time changes. It only returns for an
// invocation that prints usage: no arguments, no paths, or no command after
// "--". Otherwise it runs until the process is killed.
func Run(stdio *core.Stdio, args []string) int {
	w, ok := NewWatcher(stdio, args)
	if !ok {
		return core.ExitSuccess
	}
	_ = w.Run(context.Background())
	return core.ExitSuccess
}

// NewWatcher builds the watcher Run drives, wired to stdio. When args do not
// describe anything to run, usage is printed and false is returned. opts are
// applied after the stdio wiring.
func NewWatcher(stdio *core.Stdio, args []string, opts ...watcher.Option) (*watcher.Watcher, bool) {
	if len(args) == 0 {
		stdio.Print(usage)
		return nil, false
	}
	parsed := Split(args)
	if !parsed.Runnable() {
		stdio.Print(usage)
		return nil, false
	}
	wiring := []watcher.Option{
		watcher.WithRunner(watcher.ShellRunner(stdio)),
		watcher.WithOutput(stdio.Out),
		watcher.WithLogger(core.NewLogger(stdio, "fw")),
	}
	w, err := watcher.New(parsed.Paths, parsed.RunSpec(), append(wiring, opts...)...)
	if err != nil {
		stdio.Errorf("fw: %v\n", err)
		return nil, false
	}
	return w, true
}
