// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package grid

/*

Consistency checking

A board is consistent when no unit contains the same nonzero digit
twice.  Consistency says nothing about solvability: a consistent
board may still have no completion (see the solver), and an empty
board is trivially consistent.

*/

// A Conflict reports one pair of cells in the same unit holding
// the same nonzero value.  Cell1 is always the lower index.  A
// digit appearing k times in a unit yields all C(k,2) pairs; a
// pair that conflicts in more than one unit type (say two cells
// sharing both a row and a box) is reported once, tagged with the
// first unit type in which it was found.
type Conflict struct {
	Cell1 int      `json:"cell1"`
	Cell2 int      `json:"cell2"`
	Value int      `json:"value"`
	Type  UnitType `json:"type"`
}

// IsValid reports whether the board is consistent: no unit has
// two equal nonzero values.  An all-empty board is valid.  This
// is the cheap gate used both before solving and as a standalone
// "has the player created a conflict" check; it stops at the
// first violation rather than collecting them all.
func IsValid(board []int) bool {
	ok := true
	EachUnit(func(u Unit) bool {
		seen := 0
		for _, ci := range u.Cells {
			v := board[ci]
			if v == 0 {
				continue
			}
			bit := 1 << uint(v)
			if seen&bit != 0 {
				ok = false
				return false
			}
			seen |= bit
		}
		return true
	})
	return ok
}

// FindConflicts returns every pairwise duplicate-value conflict
// on the board.  The order is deterministic: units are scanned in
// canonical order (rows, then columns, then boxes), and within a
// unit the cell pairs are enumerated in ascending index order.
// Each cell pair is reported at most once, tagged with the first
// unit type in which it conflicts; a pair sharing both a row and
// a box shows up only in the row pass.  An empty return means the
// board is consistent.
func FindConflicts(board []int) []Conflict {
	var conflicts []Conflict
	var seen intset // pairs already reported, keyed c1*81+c2
	EachUnit(func(u Unit) bool {
		for i := 0; i < SideLength; i++ {
			vi := board[u.Cells[i]]
			if vi == 0 {
				continue
			}
			for j := i + 1; j < SideLength; j++ {
				if board[u.Cells[j]] != vi {
					continue
				}
				if seen.insert(u.Cells[i]*CellCount + u.Cells[j]) {
					continue
				}
				conflicts = append(conflicts, Conflict{
					Cell1: u.Cells[i],
					Cell2: u.Cells[j],
					Value: vi,
					Type:  u.Type,
				})
			}
		}
		return true
	})
	return conflicts
}

// FindDuplicates returns the set of all cell indices involved in
// at least one conflict, in ascending order.  This is the form
// clients want for highlighting: every offending cell appears
// exactly once, no matter how many conflicts it participates in.
func FindDuplicates(board []int) []int {
	var dups intset
	for _, c := range FindConflicts(board) {
		dups.insert(c.Cell1)
		dups.insert(c.Cell2)
	}
	return dups
}

// IsValidSolution reports whether the board is a complete, valid
// solution: all 81 cells filled and no conflicts anywhere.  A
// board with any empty cell is never a valid solution, however
// consistent it is.
func IsValidSolution(board []int) bool {
	for _, v := range board {
		if v == 0 {
			return false
		}
	}
	return IsValid(board)
}
