package main

import (
	"os"

	"github.com/rcarmo/go-fw/pkg/applets/fw"
	"github.com/rcarmo/go-fw/pkg/core"
)

func main() {
	stdio := core.DefaultStdio()
	os.Exit(fw.Run(stdio, os.Args[1:]))
}
