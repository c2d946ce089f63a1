// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Command-line client for the validoku grid engine.  Everything
// here runs offline against the pure engine; no storage needed.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
