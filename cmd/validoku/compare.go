// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/validoku/validoku/grid"
)

var compareCmd = &cobra.Command{
	Use:   "compare <board> <solution>",
	Short: "Check a partial board's entries against a solution",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := readBoardArg(args[0])
		if err != nil {
			return err
		}
		solution, err := readBoardArg(args[1])
		if err != nil {
			return err
		}
		comparison := grid.CompareBoards(board, solution)
		fmt.Println(comparison.Message)
		if !comparison.Valid {
			for _, cell := range comparison.IncorrectCells {
				fmt.Printf("cell %d holds %d, should be %d\n",
					cell, board[cell], solution[cell])
			}
			return fmt.Errorf("board disagrees with solution")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
