// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/validoku/validoku/grid"
)

var (
	solveFlat     bool
	solveMaxNodes int64
)

var solveCmd = &cobra.Command{
	Use:   "solve <board>",
	Short: "Print the first solution of a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := readBoardArg(args[0])
		if err != nil {
			return err
		}
		if conflicts := grid.FindConflicts(board); len(conflicts) > 0 {
			return fmt.Errorf(grid.ReasonConflicts)
		}
		solution, err := grid.SolveBounded(board, solveMaxNodes)
		if err != nil {
			return err
		}
		if solution == nil {
			return fmt.Errorf(grid.ReasonNoSolve)
		}
		if solveFlat {
			fmt.Println(grid.Flatten(solution))
		} else {
			fmt.Println(grid.Format(solution))
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().BoolVarP(&solveFlat, "flat", "f", false,
		"print the solution as one 81-character line")
	solveCmd.Flags().Int64VarP(&solveMaxNodes, "max-nodes", "n", 0,
		"give up after this many search nodes (0 means no limit)")
	rootCmd.AddCommand(solveCmd)
}
