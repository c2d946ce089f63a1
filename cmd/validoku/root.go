// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/validoku/validoku/grid"
)

var rootCmd = &cobra.Command{
	Use:   "validoku",
	Short: "Validate, solve, and check 9x9 Sudoku boards",
	Long: `validoku works with 9x9 Sudoku boards given as 81 characters,
one per cell in row-major order, with 0 or . for empty cells.
A board argument can also be @file to read from a file, or - to
read from standard input.`,
	SilenceUsage: true,
}

// readBoardArg turns a board argument into a board: a literal
// 81-character string, @file, or - for stdin.
func readBoardArg(arg string) ([]int, error) {
	switch {
	case arg == "-":
		bytes, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("couldn't read board from stdin: %v", err)
		}
		arg = string(bytes)
	case strings.HasPrefix(arg, "@"):
		bytes, err := os.ReadFile(arg[1:])
		if err != nil {
			return nil, fmt.Errorf("couldn't read board file: %v", err)
		}
		arg = string(bytes)
	}
	return grid.Parse(arg)
}
