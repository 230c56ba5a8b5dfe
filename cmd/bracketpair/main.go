// Package main is the entry point for the bracketpair CLI.
package main

import (
	"os"

	"github.com/dshills/bracketpair/internal/cli"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(cli.Execute(cli.BuildInfo{Version: version, Commit: commit, Date: date}))
}
