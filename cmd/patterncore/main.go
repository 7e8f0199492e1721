package main

import (
	"os"

	"github.com/relateby/patterncore/internal/cliapp"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	cliapp.SetVersion(version)

	if err := cliapp.Execute(); err != nil {
		os.Exit(1)
	}
}
