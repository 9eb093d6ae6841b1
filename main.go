// Copyright (c) 2026 Examlist Team
// Examlist - exam schedule toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Examlist.
//
// Usage:
//
//	go run . [command] [flags]
//	./examlist [command] [flags]
//
// See --help for the available commands.
package main

import (
	"os"

	"github.com/toeirei/examlist/internal/logging"
	"github.com/toeirei/examlist/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
