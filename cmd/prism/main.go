// Prism - a terminal colour theme manager
//
// Prism browses, previews and applies terminal colour presets, fades
// between palettes, and picks themes automatically from the position of
// the sun and your display brightness.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/prism/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
