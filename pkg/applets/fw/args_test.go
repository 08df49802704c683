package fw_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rcarmo/go-fw/pkg/applets/fw"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want fw.Args
	}{
		{
			name: "basic",
			args: []string{"main.c", "--", "cc", "main.c", "-o", "main"},
			want: fw.Args{Paths: []string{"main.c"}, Command: "cc main.c -o main", HasCommand: true},
		},
		{
			name: "short_clear",
			args: []string{"-c", "a.txt", "--", "echo", "hi"},
			want: fw.Args{Paths: []string{"a.txt"}, Command: "echo hi", HasCommand: true, Clear: true},
		},
		{
			name: "long_clear_between_paths",
			args: []string{"a.txt", "--clear", "b.txt", "--", "make"},
			want: fw.Args{Paths: []string{"a.txt", "b.txt"}, Command: "make", HasCommand: true, Clear: true},
		},
		{
			name: "both_flags",
			args: []string{"-c", "a", "--clear", "b", "-c", "--", "make"},
			want: fw.Args{Paths: []string{"a", "b"}, Command: "make", HasCommand: true, Clear: true},
		},
		{
			name: "flags_after_separator_are_command",
			args: []string{"a", "--", "ls", "-c", "--clear"},
			want: fw.Args{Paths: []string{"a"}, Command: "ls -c --clear", HasCommand: true},
		},
		{
			name: "first_separator_wins",
			args: []string{"a", "--", "git", "diff", "--", "a"},
			want: fw.Args{Paths: []string{"a"}, Command: "git diff -- a", HasCommand: true},
		},
		{
			name: "other_dash_tokens_are_paths",
			args: []string{"-x", "--verbose", "-", "--", "make"},
			want: fw.Args{Paths: []string{"-x", "--verbose", "-"}, Command: "make", HasCommand: true},
		},
		{
			name: "no_separator",
			args: []string{"a.txt", "b.txt"},
			want: fw.Args{Paths: []string{"a.txt", "b.txt"}},
		},
		{
			name: "no_separator_consumes_flags",
			args: []string{"-c", "a.txt"},
			want: fw.Args{Paths: []string{"a.txt"}, Clear: true},
		},
		{
			name: "empty_command",
			args: []string{"a.txt", "--"},
			want: fw.Args{Paths: []string{"a.txt"}, HasCommand: true},
		},
		{
			name: "no_paths",
			args: []string{"-c", "--", "make"},
			want: fw.Args{Command: "make", HasCommand: true, Clear: true},
		},
		{
			name: "spaces_not_quoted",
			args: []string{"a", "--", "echo", "two words"},
			want: fw.Args{Paths: []string{"a"}, Command: "echo two words", HasCommand: true},
		},
		{
			name: "empty_tokens_kept",
			args: []string{"a", "--", "", "x", ""},
			want: fw.Args{Paths: []string{"a"}, Command: " x ", HasCommand: true},
		},
		{
			name: "empty",
			args: nil,
			want: fw.Args{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fw.Split(tt.args))
		})
	}
}

func TestRunnable(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "complete", args: []string{"a", "--", "make"}, want: true},
		{name: "no_separator", args: []string{"a", "make"}, want: false},
		{name: "no_paths", args: []string{"--", "make"}, want: false},
		{name: "only_flags", args: []string{"-c", "--clear", "--", "make"}, want: false},
		{name: "nothing_after_separator", args: []string{"a", "--"}, want: false},
		{name: "blank_command", args: []string{"a", "--", "", " "}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fw.Split(tt.args).Runnable())
		})
	}
}

func TestArgsRunSpec(t *testing.T) {
	spec := fw.Split([]string{"--clear", "a", "--", "go", "test", "./..."}).RunSpec()
	assert.True(t, spec.Clear)
	assert.Equal(t, "go test ./...", spec.Command)
}
