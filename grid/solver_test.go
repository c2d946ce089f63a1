package grid

import (
	"reflect"
	"testing"
)

type solveTestcase struct {
	name   string
	start  []int
	finish []int // nil means unsolvable
}

func TestSolve(t *testing.T) {
	tcs := []solveTestcase{
		{"unique puzzle", uniquePuzzleValues, uniquePuzzleSolution},
		{"hard puzzle", hardPuzzleValues, hardPuzzleSolution},
		{"already solved", patternSolvedValues, patternSolvedValues},
		{"unsolvable", unsolvableBoard(), nil},
	}
	for _, tc := range tcs {
		before := copyBoard(tc.start)
		got := Solve(tc.start)
		if !reflect.DeepEqual(tc.start, before) {
			t.Errorf("%s: Solve mutated its input", tc.name)
		}
		if tc.finish == nil {
			if got != nil {
				t.Errorf("%s: unexpected solution %v", tc.name, got)
			}
			continue
		}
		if !reflect.DeepEqual(got, tc.finish) {
			t.Errorf("%s: Solve returned\n%v(expected)\n%v", tc.name, Format(got), Format(tc.finish))
		}
	}
}

// Solutions of ambiguous boards must still be well-formed and
// must preserve every given.
func TestSolvePreservesGivens(t *testing.T) {
	s := Solve(multiPuzzleValues)
	if s == nil {
		t.Fatalf("Solve failed on a solvable puzzle")
	}
	if !IsValidSolution(s) {
		t.Errorf("solution is not a valid full grid:\n%v", Format(s))
	}
	if cs := FindConflicts(s); len(cs) != 0 {
		t.Errorf("solution has conflicts: %+v", cs)
	}
	for i, v := range multiPuzzleValues {
		if v != 0 && s[i] != v {
			t.Errorf("given at cell %d changed from %d to %d", i, v, s[i])
		}
	}
}

// Repeated calls on the same board must take the same path and
// return the identical solution, even when many solutions exist.
func TestSolveDeterministic(t *testing.T) {
	first := Solve(multiPuzzleValues)
	second := Solve(multiPuzzleValues)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Solve is not deterministic on an ambiguous board")
	}
	first = Solve(emptyBoard())
	second = Solve(emptyBoard())
	if first == nil || !reflect.DeepEqual(first, second) {
		t.Errorf("Solve is not deterministic on the empty board")
	}
	if !IsValidSolution(first) {
		t.Errorf("empty-board solution is not valid:\n%v", Format(first))
	}
}

// The nearly-complete scenario: a solved grid with two holes must
// come back byte-for-byte, not merely as some valid solution.
func TestSolveNearlyComplete(t *testing.T) {
	b := copyBoard(uniquePuzzleSolution)
	b[75], b[77] = 0, 0
	got := Solve(b)
	if !reflect.DeepEqual(got, uniquePuzzleSolution) {
		t.Errorf("Solve returned\n%v(expected)\n%v", Format(got), Format(uniquePuzzleSolution))
	}
}

// Unsolvability must be detected promptly: the forced-9 board
// dies at its first empty cell, so even a tiny node budget is
// plenty.  A budget failure here would mean the solver wandered
// off into the full search space.
func TestSolveUnsolvablePrompt(t *testing.T) {
	got, err := SolveBounded(unsolvableBoard(), 1000)
	if err != nil {
		t.Fatalf("unsolvable board exhausted the budget: %v", err)
	}
	if got != nil {
		t.Errorf("unexpected solution %v", got)
	}
}

func TestSolveBounded(t *testing.T) {
	// an empty board needs at least 81 placements, so a budget of
	// 5 must run out
	got, err := SolveBounded(emptyBoard(), 5)
	if err != ErrBudgetExhausted {
		t.Errorf("tiny budget: got (%v, %v), expected ErrBudgetExhausted", got, err)
	}
	// zero budget means unlimited and matches Solve exactly
	got, err = SolveBounded(uniquePuzzleValues, 0)
	if err != nil {
		t.Fatalf("unbounded solve failed: %v", err)
	}
	if !reflect.DeepEqual(got, Solve(uniquePuzzleValues)) {
		t.Errorf("SolveBounded disagrees with Solve")
	}
	// a generous budget gives the same answer as Solve
	got, err = SolveBounded(hardPuzzleValues, 1<<30)
	if err != nil || !reflect.DeepEqual(got, hardPuzzleSolution) {
		t.Errorf("bounded solve: got (%v, %v)", got, err)
	}
}
