// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package grid

import (
	"fmt"
)

/*

Puzzle validation

ValidatePuzzle is a single linear pipeline with four terminal
outcomes: conflicting, unsolvable, solvable-but-ambiguous, and
unique.  Note the asymmetry in the verdict: "valid" means
"self-consistent and completable", not "an acceptable puzzle to
play" - an empty grid is valid but very much not unique.

All failures here are data, not errors: a conflicted board, an
unsolvable board, and an ambiguous board are all ordinary results
with a human-readable reason attached.

*/

// The canonical reason strings.  Clients match on these, so they
// are fixed.
const (
	ReasonConflicts = "Puzzle has conflicting numbers"
	ReasonNoSolve   = "Puzzle has no solution"
	ReasonMultiple  = "Puzzle has multiple solutions"
)

// A Verdict is the structured result of validating a puzzle.
// Unique is only meaningful when Valid is true; Reason is present
// whenever the puzzle is invalid or not unique; Solution is
// present whenever at least one completion was found.
type Verdict struct {
	Valid    bool   `json:"valid"`
	Unique   bool   `json:"unique"`
	Reason   string `json:"reason,omitempty"`
	Solution []int  `json:"solution,omitempty"`
}

// ValidatePuzzle runs the full validation pipeline on a board:
// conflict scan, then solve, then uniqueness count.  Later stages
// only run when the earlier ones pass, so the solver never sees a
// conflicted board.
func ValidatePuzzle(board []int) Verdict {
	if len(FindConflicts(board)) > 0 {
		return Verdict{Valid: false, Reason: ReasonConflicts}
	}
	solution := Solve(board)
	if solution == nil {
		return Verdict{Valid: false, Reason: ReasonNoSolve}
	}
	if !HasUniqueSolution(board) {
		return Verdict{Valid: true, Unique: false, Reason: ReasonMultiple, Solution: solution}
	}
	return Verdict{Valid: true, Unique: true, Solution: solution}
}

// A Comparison is the result of checking a player's working board
// against a known-correct solution.  IncorrectCells lists the
// indices of filled cells that disagree with the solution; empty
// cells are never flagged.
type Comparison struct {
	Valid          bool   `json:"valid"`
	IncorrectCells []int  `json:"incorrectCells"`
	Message        string `json:"message"`
}

// CompareBoards checks every filled cell of the working board
// against the known solution.  This is the one place in the
// package that validates input lengths; a board or solution that
// isn't 81 cells long gets a rejection result, not a panic.
func CompareBoards(working, solution []int) Comparison {
	if len(working) != CellCount || len(solution) != CellCount {
		return Comparison{Valid: false, Message: "Invalid board or solution length"}
	}
	var incorrect []int
	for i, v := range working {
		if v != 0 && v != solution[i] {
			incorrect = append(incorrect, i)
		}
	}
	if len(incorrect) == 0 {
		return Comparison{Valid: true, Message: "All entries are correct so far!"}
	}
	return Comparison{
		Valid:          false,
		IncorrectCells: incorrect,
		Message:        fmt.Sprintf("Found %d incorrect cells", len(incorrect)),
	}
}
