// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/validoku/validoku/grid"
)

var conflictsCmd = &cobra.Command{
	Use:   "conflicts <board>",
	Short: "List the duplicated values on a board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := readBoardArg(args[0])
		if err != nil {
			return err
		}
		conflicts := grid.FindConflicts(board)
		if len(conflicts) == 0 {
			fmt.Println("No conflicts")
			return nil
		}
		for _, c := range conflicts {
			fmt.Printf("cells %d and %d share %s %d: both hold %d\n",
				c.Cell1, c.Cell2, c.Type, unitIndex(c), c.Value)
		}
		return fmt.Errorf(grid.ReasonConflicts)
	},
}

// unitIndex recovers the index of the unit a conflict was found
// in, for display.
func unitIndex(c grid.Conflict) int {
	switch c.Type {
	case grid.UnitRow:
		return c.Cell1 / grid.SideLength
	case grid.UnitColumn:
		return c.Cell1 % grid.SideLength
	default:
		row, col := c.Cell1/grid.SideLength, c.Cell1%grid.SideLength
		return (row/grid.BoxSide)*grid.BoxSide + col/grid.BoxSide
	}
}

func init() {
	rootCmd.AddCommand(conflictsCmd)
}
