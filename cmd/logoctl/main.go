// Package main is the entry point for logoctl.
package main

import "github.com/jsamuelsen/logodir/internal/cli"

// Version is injected via ldflags: -X main.Version=1.0.0
var Version = "dev"

func main() {
	cli.Execute(Version)
}
