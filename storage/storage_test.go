package storage

import (
	"context"
	"os"
	"reflect"
	"testing"

	"github.com/validoku/validoku/grid"
)

/*

setup

These tests exercise live Redis and Postgres instances, so they
only run when STORAGE_TEST is set; everywhere else they skip.
Endpoints come from REDIS_URL and DATABASE_URL as usual.

*/

// requireStorage connects to the live stores, skipping the test
// when integration testing isn't enabled.
func requireStorage(t *testing.T) context.Context {
	t.Helper()
	if os.Getenv("STORAGE_TEST") == "" {
		t.Skip("set STORAGE_TEST=1 (with REDIS_URL and DATABASE_URL) to run storage tests")
	}
	ctx := context.Background()
	if !Connected() {
		os.Setenv("DBPREP_PATH", "../dbprep/migrations")
		if _, _, err := Connect(ctx); err != nil {
			t.Fatalf("couldn't connect to storage: %v", err)
		}
	}
	return ctx
}

var testPuzzleGivens = []int{
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

/*

puzzle library

*/

func TestSaveLoadPuzzle(t *testing.T) {
	ctx := requireStorage(t)
	saved, err := SavePuzzle(ctx, "test-puzzle", "Test Puzzle", testPuzzleGivens)
	if err != nil {
		t.Fatalf("couldn't save puzzle: %v", err)
	}
	if !saved.Unique {
		t.Errorf("saved puzzle not marked unique")
	}
	if !grid.IsValidSolution(saved.Solution) {
		t.Errorf("saved solution isn't a valid solved grid")
	}
	// load twice: once likely from the database, once from cache
	for i := 0; i < 2; i++ {
		loaded, err := LoadPuzzle(ctx, "test-puzzle")
		if err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
		if !reflect.DeepEqual(loaded.Givens, saved.Givens) ||
			!reflect.DeepEqual(loaded.Solution, saved.Solution) ||
			loaded.Unique != saved.Unique {
			t.Errorf("load %d disagrees with save: %+v", i, loaded)
		}
	}
}

func TestSavePuzzleRejectsConflicted(t *testing.T) {
	ctx := requireStorage(t)
	conflicted := append([]int(nil), testPuzzleGivens...)
	conflicted[1] = conflicted[0]
	if _, err := SavePuzzle(ctx, "bad-puzzle", "Bad Puzzle", conflicted); err == nil {
		t.Errorf("conflicted puzzle accepted into the library")
	}
}

func TestLoadPuzzleNotFound(t *testing.T) {
	ctx := requireStorage(t)
	if _, err := LoadPuzzle(ctx, "no-such-puzzle"); err == nil {
		t.Errorf("unknown puzzle loaded without error")
	}
}

func TestPuzzleIds(t *testing.T) {
	ctx := requireStorage(t)
	ids, err := PuzzleIds(ctx)
	if err != nil {
		t.Fatalf("couldn't list puzzles: %v", err)
	}
	found := false
	for _, id := range ids {
		if id == DefaultPuzzleId {
			found = true
		}
	}
	if !found {
		t.Errorf("default puzzle %q missing from library list %v", DefaultPuzzleId, ids)
	}
}

/*

sessions

*/

func TestSessionLifecycle(t *testing.T) {
	ctx := requireStorage(t)
	sid := NewSessionId()
	session, err := Lookup(ctx, sid)
	if err != nil {
		t.Fatalf("couldn't create session: %v", err)
	}
	if session.PID != DefaultPuzzleId || session.Step != 1 {
		t.Fatalf("fresh session state: %+v", session)
	}

	// find an empty cell and fill it wrongly, then rightly
	pe, err := LoadPuzzle(ctx, session.PID)
	if err != nil {
		t.Fatalf("couldn't load session puzzle: %v", err)
	}
	target := -1
	for i, v := range session.Board {
		if v == 0 {
			target = i
			break
		}
	}
	if target < 0 {
		t.Fatalf("default puzzle has no empty cells")
	}
	wrong := pe.Solution[target]%9 + 1
	if err := session.SetCell(target, wrong); err != nil {
		t.Fatalf("couldn't set cell: %v", err)
	}
	check, err := session.Check(ctx)
	if err != nil {
		t.Fatalf("couldn't check session: %v", err)
	}
	if check.Valid || !reflect.DeepEqual(check.IncorrectCells, []int{target}) {
		t.Errorf("check after wrong entry: %+v", check)
	}

	// undo restores the givens
	if err := session.Undo(); err != nil {
		t.Fatalf("couldn't undo: %v", err)
	}
	if session.Step != 1 || !reflect.DeepEqual(session.Board, pe.Givens) {
		t.Errorf("undo didn't restore step 1: %+v", session)
	}
	check, err = session.Check(ctx)
	if err != nil {
		t.Fatalf("couldn't check session: %v", err)
	}
	if !check.Valid || check.Message != "All entries are correct so far!" {
		t.Errorf("check after undo: %+v", check)
	}

	// a second lookup resumes where we left off
	if err := session.SetCell(target, pe.Solution[target]); err != nil {
		t.Fatalf("couldn't set cell: %v", err)
	}
	resumed, err := Lookup(ctx, sid)
	if err != nil {
		t.Fatalf("couldn't resume session: %v", err)
	}
	if resumed.Step != session.Step || !reflect.DeepEqual(resumed.Board, session.Board) {
		t.Errorf("resumed session disagrees: %+v vs %+v", resumed, session)
	}
}

func TestSessionRejectsBadCell(t *testing.T) {
	ctx := requireStorage(t)
	session, err := Lookup(ctx, NewSessionId())
	if err != nil {
		t.Fatalf("couldn't create session: %v", err)
	}
	if err := session.SetCell(grid.CellCount, 1); err == nil {
		t.Errorf("out-of-range index accepted")
	}
	if err := session.SetCell(0, 10); err == nil {
		t.Errorf("out-of-range value accepted")
	}
}
