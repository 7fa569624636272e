// SPDX-License-Identifier: MIT

// Command itersolve reads linear systems and solves them with the iterative
// methods of the axb package.
//
// Usage:
//
//	itersolve solve --input system.txt --algorithm sor --omega 1.2
//	itersolve compare --input system.txt --plot history.png
//	itersolve generate --rank 64 > system.txt
//
// A YAML file passed with --config supplies defaults for every solve flag.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
