// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package grid

/*

Uniqueness counting

Structurally the same search as Solve, but on reaching a complete
board it counts the completion and keeps backtracking instead of
returning.  The moment a second completion turns up, the whole
search unwinds immediately: an empty grid has billions of
completions and we must never try to enumerate past two.

*/

// HasUniqueSolution reports whether the board, assumed
// consistent, has exactly one completion.  An unsolvable board
// has zero completions and reports false; an under-constrained
// one stops counting at two and reports false; a fully solved
// board counts itself and reports true.
func HasUniqueSolution(board []int) bool {
	var s searcher
	s.load(board)
	s.countTo(0, 2)
	return s.count == 1
}

// countTo counts completions reachable from the current state, up
// to limit.  The return value means "limit reached, stop
// unwinding" and aborts the search at every depth on the way out.
func (s *searcher) countTo(from, limit int) bool {
	i := from
	for i < CellCount && s.cells[i] != 0 {
		i++
	}
	if i == CellCount {
		s.count++
		return s.count >= limit
	}
	for v := 1; v <= SideLength; v++ {
		if s.taken(i, v) {
			continue
		}
		s.nodes++
		s.place(i, v)
		if s.countTo(i+1, limit) {
			return true
		}
		s.unplace(i, v)
	}
	return false
}
