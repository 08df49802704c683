package fw

import (
	"strings"

	"github.com/rcarmo/go-fw/pkg/watcher"
)

// Separator divides watch paths from the command.
const Separator = "--"

// Args is the result of splitting an fw command line.
type Args struct {
	Paths      []string
	Command    string
	HasCommand bool
	Clear      bool
}

// Split divides args (without the program name) at the first "--".
//
// Before the separator, -c and --clear set Clear and every other token is a
// path. The tokens after the separator are joined with single spaces into
// Command. Nothing is quoted, so arguments containing spaces are split again
// by the shell that runs the command. Without a separator every non-flag
// token is a path and there is no command.
func Split(args []string) Args {
	var parsed Args
	before := args
	for i, arg := range args {
		if arg == Separator {
			before = args[:i]
			parsed.Command = strings.Join(args[i+1:], " ")
			parsed.HasCommand = true
			break
		}
	}
	for _, arg := range before {
		switch arg {
		case "-c", "--clear":
			parsed.Clear = true
		default:
			parsed.Paths = append(parsed.Paths, arg)
		}
	}
	return parsed
}

// Runnable reports whether there is something to watch and something to run.
func (a Args) Runnable() bool {
	return len(a.Paths) > 0 && a.HasCommand && strings.TrimSpace(a.Command) != ""
}

// RunSpec returns the watcher's view of the parsed arguments.
func (a Args) RunSpec() watcher.RunSpec {
	return watcher.RunSpec{Clear: a.Clear, Command: a.Command}
}
