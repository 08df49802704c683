//go:build js || wasm || wasip1

package fw

import "github.com/rcarmo/go-fw/pkg/core"

// Run is a stub that returns an error on WASM platforms where fw is unsupported.
func Run(stdio *core.Stdio, args []string) int {
	stdio.Errorf("fw: not supported in wasm\n")
	return core.ExitFailure
}
