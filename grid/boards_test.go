package grid

/*

Shared test boards

uniquePuzzleValues and hardPuzzleValues are published puzzles with
exactly one solution each; multiPuzzleValues is a published puzzle
that turns out to have a dozen solutions.  patternSolvedValues is
the shifted-rows complete grid, handy wherever any full valid
solution will do.

*/

var (
	uniquePuzzleValues = []int{
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	}
	uniquePuzzleSolution = []int{
		4, 6, 1, 8, 7, 3, 5, 9, 2,
		8, 7, 9, 5, 2, 6, 3, 4, 1,
		2, 5, 3, 4, 1, 9, 6, 7, 8,
		7, 1, 5, 2, 3, 4, 8, 6, 9,
		3, 9, 4, 6, 8, 5, 2, 1, 7,
		6, 2, 8, 7, 9, 1, 4, 3, 5,
		9, 4, 6, 1, 5, 8, 7, 2, 3,
		1, 8, 7, 3, 6, 2, 9, 5, 4,
		5, 3, 2, 9, 4, 7, 1, 8, 6,
	}
	hardPuzzleValues = []int{
		9, 0, 0, 4, 5, 0, 0, 0, 8,
		0, 2, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 7, 2, 4, 0, 0,
		0, 7, 9, 0, 0, 0, 6, 8, 0,
		2, 0, 0, 0, 0, 0, 0, 0, 5,
		0, 4, 3, 0, 0, 0, 2, 7, 0,
		0, 0, 8, 3, 2, 5, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 6, 0,
		4, 0, 0, 0, 1, 6, 0, 0, 3,
	}
	hardPuzzleSolution = []int{
		9, 6, 1, 4, 5, 3, 7, 2, 8,
		7, 2, 4, 6, 8, 9, 5, 3, 1,
		8, 3, 5, 1, 7, 2, 4, 9, 6,
		5, 7, 9, 2, 3, 1, 6, 8, 4,
		2, 8, 6, 9, 4, 7, 3, 1, 5,
		1, 4, 3, 5, 6, 8, 2, 7, 9,
		6, 1, 8, 3, 2, 5, 9, 4, 7,
		3, 5, 7, 8, 9, 4, 1, 6, 2,
		4, 9, 2, 7, 1, 6, 8, 5, 3,
	}
	multiPuzzleValues = []int{
		2, 0, 0, 8, 0, 0, 0, 5, 0,
		0, 8, 5, 0, 0, 0, 0, 0, 0,
		0, 3, 6, 7, 5, 0, 0, 0, 1,
		0, 0, 3, 0, 4, 0, 0, 9, 8,
		0, 0, 0, 3, 0, 5, 0, 0, 0,
		4, 1, 0, 0, 6, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 1, 2, 0,
		0, 0, 0, 0, 0, 0, 5, 6, 0,
		0, 2, 0, 0, 0, 0, 0, 0, 4,
	}
	patternSolvedValues = []int{
		1, 2, 3, 4, 5, 6, 7, 8, 9,
		4, 5, 6, 7, 8, 9, 1, 2, 3,
		7, 8, 9, 1, 2, 3, 4, 5, 6,
		2, 3, 4, 5, 6, 7, 8, 9, 1,
		5, 6, 7, 8, 9, 1, 2, 3, 4,
		8, 9, 1, 2, 3, 4, 5, 6, 7,
		3, 4, 5, 6, 7, 8, 9, 1, 2,
		6, 7, 8, 9, 1, 2, 3, 4, 5,
		9, 1, 2, 3, 4, 5, 6, 7, 8,
	}
)

// emptyBoard returns a fresh all-zero board.
func emptyBoard() []int {
	return make([]int, CellCount)
}

// copyBoard returns an independent copy of a board.
func copyBoard(b []int) []int {
	out := make([]int, len(b))
	copy(out, b)
	return out
}

// unsolvableBoard returns a consistent board with no completion:
// row elimination forces cell 0 to be 9, but column 0 already has
// a 9 at row 1.
func unsolvableBoard() []int {
	b := emptyBoard()
	for i := 1; i <= 8; i++ {
		b[i] = i
	}
	b[9] = 9
	return b
}
