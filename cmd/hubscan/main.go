// Package main provides the entry point for the hubscan CLI tool.
package main

import (
	"github.com/hubscan/hubscan/cmd/hubscan/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
