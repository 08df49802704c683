package fw_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/rcarmo/go-fw/pkg/applets/fw"
	"github.com/rcarmo/go-fw/pkg/testutil"
)

// FuzzSplit checks the splitting properties on token lists encoded as
// NUL-separated strings.
func FuzzSplit(f *testing.F) {
	seeds := []string{
		"main.c\x00--\x00cc main.c -o main",
		"-c\x00a.txt\x00--\x00echo\x00hi",
		"a\x00--clear\x00b\x00--\x00make\x00-j4",
		"a\x00b\x00c",
		"-c\x00--clear",
		"--",
		"a\x00--\x00--\x00x",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	if testing.Short() {
		f.Skip("fuzzing skipped in short mode")
	}
	f.Fuzz(func(t *testing.T, data string) {
		args := strings.Split(testutil.ClampString(data, testutil.MaxFuzzBytes), "\x00")
		parsed := fw.Split(args)

		sep := slices.Index(args, fw.Separator)
		before := args
		if sep >= 0 {
			before = args[:sep]
			if !parsed.HasCommand {
				t.Fatalf("separator at %d but no command", sep)
			}
			if want := strings.Join(args[sep+1:], " "); parsed.Command != want {
				t.Fatalf("command = %q, want %q", parsed.Command, want)
			}
		} else if parsed.HasCommand || parsed.Command != "" {
			t.Fatalf("no separator but command %q", parsed.Command)
		}

		var wantPaths []string
		wantClear := false
		for _, arg := range before {
			if arg == "-c" || arg == "--clear" {
				wantClear = true
				continue
			}
			wantPaths = append(wantPaths, arg)
		}
		if !slices.Equal(parsed.Paths, wantPaths) {
			t.Fatalf("paths = %q, want %q", parsed.Paths, wantPaths)
		}
		if parsed.Clear != wantClear {
			t.Fatalf("clear = %v, want %v", parsed.Clear, wantClear)
		}
	})
}
