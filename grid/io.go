// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package grid

import (
	"fmt"
	"strings"
)

/*

Print and parse forms of boards

The interchange form is the usual flat 81-character string, one
digit per cell in reading order, with '0' or '.' for an empty
cell.  That's what the CLI accepts, what the database seed data is
written in, and what shows up in bug reports.

*/

// Parse converts an 81-character board string into a board slice.
// '0' and '.' both mean an empty cell; whitespace and newlines
// are ignored, so grids laid out over nine lines parse the same
// as one-liners.
func Parse(s string) ([]int, error) {
	board := make([]int, 0, CellCount)
	for _, r := range s {
		switch {
		case r == '.' || r == '0':
			board = append(board, 0)
		case r >= '1' && r <= '9':
			board = append(board, int(r-'0'))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '|' || r == '-' || r == '+':
			// layout characters, skip
		default:
			return nil, fmt.Errorf("invalid board character %q", r)
		}
	}
	if len(board) != CellCount {
		return nil, fmt.Errorf("board has %d cells, expected %d", len(board), CellCount)
	}
	return board, nil
}

// Format gives a pretty-printed view of a board, with box
// separators, for debugging and CLI output.
func Format(board []int) string {
	var sb strings.Builder
	for r := 0; r < SideLength; r++ {
		if r > 0 && r%BoxSide == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < SideLength; c++ {
			if c > 0 && c%BoxSide == 0 {
				sb.WriteString("| ")
			}
			v := 0
			if i := r*SideLength + c; i < len(board) {
				v = board[i]
			}
			if v == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(fmt.Sprintf("%d ", v))
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Flatten is the inverse of Parse: the 81-character one-line
// form, with '0' for empty cells.
func Flatten(board []int) string {
	var sb strings.Builder
	for i := 0; i < CellCount; i++ {
		v := 0
		if i < len(board) {
			v = board[i]
		}
		if v < 0 || v > SideLength {
			sb.WriteByte('?')
			continue
		}
		sb.WriteByte(byte('0' + v))
	}
	return sb.String()
}
