// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/validoku/validoku/grid"
)

var validateShowSolution bool

var validateCmd = &cobra.Command{
	Use:   "validate <board>",
	Short: "Report whether a board is a valid puzzle with a unique solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := readBoardArg(args[0])
		if err != nil {
			return err
		}
		v := grid.ValidatePuzzle(board)
		switch {
		case !v.Valid:
			fmt.Println(v.Reason)
		case !v.Unique:
			fmt.Println(v.Reason)
		default:
			fmt.Println("Puzzle is valid and has a unique solution")
		}
		if validateShowSolution && v.Solution != nil {
			fmt.Println(grid.Format(v.Solution))
		}
		if !v.Valid {
			return fmt.Errorf("invalid puzzle")
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().BoolVarP(&validateShowSolution, "solution", "s", false,
		"also print the solution, if there is one")
	rootCmd.AddCommand(validateCmd)
}
