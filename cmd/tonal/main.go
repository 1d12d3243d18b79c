// Tonal - A perceptually uniform color scale synthesizer
//
// Tonal synthesizes contextually aware 12-step color scales from a
// small set of seed colors and a background.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
