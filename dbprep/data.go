// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/viper"
	"github.com/validoku/validoku/grid"
)

/*

entries

*/

type dataFunction func(context.Context, pgx.Tx) error

var (
	upFunctions = []dataFunction{
		insertSamples,
	}
	downFunctions = []dataFunction{
		deleteSamples,
	}
)

// DataUp loads the sample puzzles into the database.  Do this
// after you get the schema up!
func DataUp() error {
	return applyFunctions(upFunctions)
}

// DataDown removes the sample puzzles from the database.  Do this
// before you tear the schema down!
func DataDown() error {
	return applyFunctions(downFunctions)
}

// applyFunctions runs each dataFunction in its own transaction,
// so later ones can rely on the effect of earlier ones having
// been committed.
func applyFunctions(fns []dataFunction) error {
	viper.SetDefault("DATABASE_URL", "postgres://localhost/validoku?sslmode=disable")
	viper.AutomaticEnv()
	url := viper.GetString("DATABASE_URL")

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer conn.Close(ctx)

	runFunc := func(fn dataFunction) error {
		tx, err := conn.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)
		if err := fn(ctx, tx); err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	for i, fn := range fns {
		if err := runFunc(fn); err != nil {
			return fmt.Errorf("data function %d failed: %v", i, err)
		}
	}
	return nil
}

/*

sample puzzles

*/

// The sample library, in rough order of difficulty.  Every board
// is validated at load time, so the stored solution and
// uniqueness flag always agree with what the solver would say.
var sampleGivens = map[string][]int{
	"1-star": {
		4, 0, 0, 0, 0, 3, 5, 0, 2,
		0, 0, 9, 5, 0, 6, 3, 4, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 8,
		0, 0, 0, 0, 3, 4, 8, 6, 0,
		0, 0, 4, 6, 0, 5, 2, 0, 0,
		0, 2, 8, 7, 9, 0, 0, 0, 0,
		9, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 8, 7, 3, 0, 2, 9, 0, 0,
		5, 0, 2, 9, 0, 0, 0, 0, 6,
	},
	"2-star": {
		0, 1, 0, 5, 0, 6, 0, 2, 0,
		0, 0, 0, 0, 0, 3, 0, 1, 8,
		0, 0, 0, 0, 7, 0, 0, 0, 6,
		0, 0, 5, 0, 0, 0, 0, 3, 0,
		0, 0, 8, 0, 9, 0, 7, 0, 0,
		0, 6, 0, 0, 0, 0, 4, 0, 0,
		5, 0, 0, 0, 4, 0, 0, 0, 0,
		6, 4, 0, 2, 0, 0, 0, 0, 0,
		0, 3, 0, 9, 0, 1, 0, 8, 0,
	},
	"3-star": {
		9, 4, 8, 0, 5, 0, 2, 0, 0,
		0, 0, 7, 8, 0, 3, 0, 0, 1,
		0, 5, 0, 0, 7, 0, 0, 0, 0,
		0, 7, 0, 0, 0, 0, 3, 0, 0,
		2, 0, 0, 6, 0, 5, 0, 0, 4,
		0, 0, 5, 0, 0, 0, 0, 9, 0,
		0, 0, 0, 0, 6, 0, 0, 1, 0,
		3, 0, 0, 5, 0, 9, 7, 0, 0,
		0, 0, 6, 0, 1, 0, 4, 2, 3,
	},
	"4-star": {
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		9, 0, 0, 5, 0, 7, 0, 3, 0,
		0, 0, 0, 1, 0, 0, 6, 0, 7,
		0, 4, 0, 0, 6, 0, 0, 8, 2,
		6, 7, 0, 0, 0, 0, 0, 1, 3,
		3, 8, 0, 0, 1, 0, 0, 9, 0,
		7, 0, 5, 0, 0, 8, 0, 0, 0,
		0, 2, 0, 3, 0, 9, 0, 0, 8,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	},
	"5-star": {
		2, 0, 0, 8, 0, 0, 0, 5, 0,
		0, 8, 5, 0, 0, 0, 0, 0, 0,
		0, 3, 6, 7, 5, 0, 0, 0, 1,
		0, 0, 3, 0, 4, 0, 0, 9, 8,
		0, 0, 0, 3, 0, 5, 0, 0, 0,
		4, 1, 0, 0, 6, 0, 7, 0, 0,
		5, 0, 0, 0, 0, 7, 1, 2, 0,
		0, 0, 0, 0, 0, 0, 5, 6, 0,
		0, 2, 0, 0, 0, 0, 0, 0, 4,
	},
	"6-star": {
		9, 0, 0, 4, 5, 0, 0, 0, 8,
		0, 2, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 1, 7, 2, 4, 0, 0,
		0, 7, 9, 0, 0, 0, 6, 8, 0,
		2, 0, 0, 0, 0, 0, 0, 0, 5,
		0, 4, 3, 0, 0, 0, 2, 7, 0,
		0, 0, 8, 3, 2, 5, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 6, 0,
		4, 0, 0, 0, 1, 6, 0, 0, 3,
	},
}

// sampleIds orders the sample inserts (map iteration is random).
var sampleIds = []string{"1-star", "2-star", "3-star", "4-star", "5-star", "6-star"}

// insertSamples validates and inserts the sample puzzles.
func insertSamples(ctx context.Context, tx pgx.Tx) error {
	// idempotency: if any sample exists, the load already ran
	var count int64
	row := tx.QueryRow(ctx, "SELECT COUNT(*) FROM puzzles WHERE puzzleId = $1", sampleIds[0])
	if err := row.Scan(&count); err != nil {
		return fmt.Errorf("database error looking for sample puzzles: %v", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	for _, id := range sampleIds {
		givens := sampleGivens[id]
		v := grid.ValidatePuzzle(givens)
		if !v.Valid {
			return fmt.Errorf("can't happen: sample puzzle %q is invalid: %s", id, v.Reason)
		}
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleId, name, givens, solution, uniqueSolution, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6)",
			id, "Sample "+id, grid.Flatten(givens), grid.Flatten(v.Solution), v.Unique, now)
		if err != nil {
			return fmt.Errorf("database error saving sample puzzle %q: %v", id, err)
		}
	}
	return nil
}

// deleteSamples removes the sample puzzles.
func deleteSamples(ctx context.Context, tx pgx.Tx) error {
	for _, id := range sampleIds {
		if _, err := tx.Exec(ctx, "DELETE FROM puzzles WHERE puzzleId = $1", id); err != nil {
			return fmt.Errorf("database error deleting sample puzzle %q: %v", id, err)
		}
	}
	return nil
}
