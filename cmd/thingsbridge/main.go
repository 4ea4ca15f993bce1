// Package main provides the entry point for the thingsbridge CLI.
package main

import (
	"context"
	"os"

	"github.com/thingsbridge/thingsbridge/internal/cli"
)

// Set at build time via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(ctx, info); err != nil {
		os.Exit(cli.ExitCodeForError(err))
	}
}
