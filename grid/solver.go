// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package grid

import (
	"errors"
)

/*

Backtracking solver

The solver is a depth-first search over the empty cells.  The
search order is fixed and is part of the contract, not a tuning
choice: we always fill the lowest-indexed empty cell first and try
digits 1 through 9 in increasing order.  Given the same input,
every run takes the same path and lands on the same solution, so
test expectations can be byte-exact.  (A cleverer heuristic such
as most-constrained-cell-first would often be faster, but on an
ambiguous board it lands on a different member of the solution
set, and determinism is worth more here than speed.)

Legality checks are O(1): the searcher keeps a 9-bit "taken"
mask for every row, column, and box, updated as digits are placed
and removed.  This changes nothing about the search order; it
only avoids rescanning 8 peers per candidate.

Recursion depth is bounded by the 81 empty cells, so native
recursion is safe; no explicit stack needed.

*/

// ErrBudgetExhausted is returned by SolveBounded when the search
// used up its node budget before finding an answer either way.
var ErrBudgetExhausted = errors.New("solve: node budget exhausted before an answer was found")

// A searcher holds the working state of one backtracking run: a
// private copy of the board plus the taken-digit masks.  A
// searcher is built, used for a single call, and discarded, so
// nothing here is shared or reused.
type searcher struct {
	cells  [CellCount]int
	rows   [SideLength]uint16
	cols   [SideLength]uint16
	boxes  [SideLength]uint16
	nodes  int64 // digits tried so far
	budget int64 // node budget; 0 means unlimited
	spent  bool  // budget ran out mid-search
	count  int   // completions found (uniqueness search)
}

// load copies the board into the searcher and builds the masks.
// The board is assumed consistent; on a conflicted board the
// duplicate digit just sets an already-set bit and the search
// result is unspecified, per the solver contract.
func (s *searcher) load(board []int) {
	copy(s.cells[:], board)
	for i, v := range s.cells {
		if v != 0 {
			s.place(i, v)
		}
	}
}

func (s *searcher) place(i, v int) {
	bit := uint16(1) << uint(v)
	s.rows[i/SideLength] |= bit
	s.cols[i%SideLength] |= bit
	s.boxes[boxOf(i)] |= bit
	s.cells[i] = v
}

func (s *searcher) unplace(i, v int) {
	bit := uint16(1) << uint(v)
	s.rows[i/SideLength] &^= bit
	s.cols[i%SideLength] &^= bit
	s.boxes[boxOf(i)] &^= bit
	s.cells[i] = 0
}

// taken reports whether digit v is already used in the row,
// column, or box of cell i.
func (s *searcher) taken(i, v int) bool {
	bit := uint16(1) << uint(v)
	return (s.rows[i/SideLength]|s.cols[i%SideLength]|s.boxes[boxOf(i)])&bit != 0
}

// search finds the first completion reachable from the current
// state, returning whether one was found.  Because cells are
// always filled lowest-index-first, the next empty cell is never
// below from, so the scan resumes there instead of at 0.
func (s *searcher) search(from int) bool {
	i := from
	for i < CellCount && s.cells[i] != 0 {
		i++
	}
	if i == CellCount {
		return true
	}
	for v := 1; v <= SideLength; v++ {
		if s.taken(i, v) {
			continue
		}
		s.nodes++
		if s.budget > 0 && s.nodes > s.budget {
			s.spent = true
			return false
		}
		s.place(i, v)
		if s.search(i + 1) {
			return true
		}
		s.unplace(i, v)
		if s.spent {
			return false
		}
	}
	return false
}

// Solve completes a consistent but possibly partial board,
// returning one full solution or nil if none exists.  The input
// is never modified, and every nonzero input cell keeps its value
// in the returned solution.  An already-complete valid board
// comes back as an equal copy with zero search done.
//
// Callers are expected to gate with IsValid first: on a board
// that already has conflicts the result is unspecified (no panic,
// but not meaningful either).
func Solve(board []int) []int {
	var s searcher
	s.load(board)
	if !s.search(0) {
		return nil
	}
	out := make([]int, CellCount)
	copy(out, s.cells[:])
	return out
}

// SolveBounded is Solve with a node budget: the search gives up
// with ErrBudgetExhausted after trying maxNodes digits.  Within
// budget the answers are identical to Solve's, including the nil
// result for unsolvable boards.  A maxNodes of 0 or less means
// unlimited, which makes SolveBounded equivalent to Solve.
func SolveBounded(board []int, maxNodes int64) ([]int, error) {
	var s searcher
	s.budget = maxNodes
	s.load(board)
	if s.search(0) {
		out := make([]int, CellCount)
		copy(out, s.cells[:])
		return out, nil
	}
	if s.spent {
		return nil, ErrBudgetExhausted
	}
	return nil, nil
}
