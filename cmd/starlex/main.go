package main

import (
	"os"

	"github.com/mnimmny/starlarky/cmd/starlex/app"
)

// Version information (set at build time via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(app.Run(version, commit, date))
}
