// Package procutil provides helpers for applets that launch commands.
package procutil

import (
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"

	"github.com/rcarmo/go-fw/pkg/core"
)

// ShellCommand returns a command that runs line through the platform's
// command interpreter, so pipes and chaining in line keep working.
func ShellCommand(line string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/C", line) // #nosec G204 -- runs user-provided shell command
	}
	return exec.Command("sh", "-c", line) // #nosec G204 -- runs user-provided shell command
}

// RunShell runs line through the shell with stdio attached and waits for it.
// The returned code is the command's exit status. A non-nil error means the
// shell could not be started or waited on; a command that runs and fails is
// reported through its exit code only.
func RunShell(stdio *core.Stdio, line string) (int, error) {
	cmd := ShellCommand(line)
	cmd.Stdout = stdio.Out
	cmd.Stderr = stdio.Err
	cmd.Stdin = stdio.In
	cmd.Env = os.Environ()
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return core.ExitFailure, errors.Wrapf(err, "run %q", line)
	}
	return core.ExitSuccess, nil
}
