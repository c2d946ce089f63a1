// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/validoku/validoku/grid"
)

/*

The puzzle library

Puzzle entries are stored durably in Postgres and cached in Redis
with a TTL.  Loads go cache first, then database, then re-prime
the cache, so a warm server rarely touches Postgres on the read
path.  Every entry carries the verdict computed when it was
saved: the givens, the deterministic solution, and whether that
solution is unique.  Storing the verdict means session checks
never re-run the solver for library puzzles.

*/

// cacheTTL is how long a puzzle entry stays cached.  Entries are
// immutable once saved, so the TTL only bounds cache size, not
// staleness.
const cacheTTL = 3600 // seconds

// A PuzzleEntry is one stored puzzle: its givens plus the verdict
// computed at save time.
type PuzzleEntry struct {
	PuzzleId string    `json:"puzzleId"`
	Name     string    `json:"name"`
	Givens   []int     `json:"givens"`
	Solution []int     `json:"solution"`
	Unique   bool      `json:"unique"`
	Created  time.Time `json:"created"`
}

// ErrPuzzleNotFound is returned when a puzzle ID isn't in the
// library.
var ErrPuzzleNotFound = fmt.Errorf("no such puzzle in the library")

// key is the entry's cache key.
func (pe *PuzzleEntry) key() string {
	return "puzzle:" + pe.PuzzleId
}

// LoadPuzzle fetches a puzzle entry by ID, trying the cache
// before the database.  A database hit re-primes the cache.
func LoadPuzzle(ctx context.Context, id string) (*PuzzleEntry, error) {
	pe := &PuzzleEntry{PuzzleId: id}
	found, err := pe.cacheLoad()
	if err != nil {
		// a broken cache shouldn't take reads down; note it and
		// fall through to the database
		log.WithError(err).Warn("puzzle cache read failed")
	}
	if found {
		return pe, nil
	}
	if err := pe.databaseLoad(ctx); err != nil {
		return nil, err
	}
	if err := pe.cacheInsert(); err != nil {
		log.WithError(err).Warn("puzzle cache insert failed")
	}
	return pe, nil
}

// SavePuzzle validates a puzzle and, if its board is valid,
// stores it with its computed verdict.  Boards that are
// conflicted or unsolvable are rejected: the library holds
// puzzles people can actually work on.  Ambiguous puzzles are
// allowed but remembered as non-unique.
func SavePuzzle(ctx context.Context, id, name string, givens []int) (*PuzzleEntry, error) {
	v := grid.ValidatePuzzle(givens)
	if !v.Valid {
		return nil, fmt.Errorf("puzzle %q rejected: %s", id, v.Reason)
	}
	pe := &PuzzleEntry{
		PuzzleId: id,
		Name:     name,
		Givens:   append([]int(nil), givens...),
		Solution: v.Solution,
		Unique:   v.Unique,
		Created:  time.Now(),
	}
	if err := pe.databaseInsert(ctx); err != nil {
		return nil, err
	}
	if err := pe.cacheInsert(); err != nil {
		log.WithError(err).Warn("puzzle cache insert failed")
	}
	log.WithFields(map[string]interface{}{
		"puzzle": id,
		"unique": pe.Unique,
	}).Info("saved puzzle to library")
	return pe, nil
}

// PuzzleIds lists the library's puzzle IDs in name order.
func PuzzleIds(ctx context.Context) ([]string, error) {
	var ids []string
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, "SELECT puzzleId FROM puzzles ORDER BY name")
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return err
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't list puzzles: %v", err)
	}
	return ids, nil
}

/*

cache tier

*/

// cacheLoad fills the entry from the cache, reporting whether it
// was there.
func (pe *PuzzleEntry) cacheLoad() (bool, error) {
	var bytes []byte
	err := redisExecute(func(conn redis.Conn) (err error) {
		bytes, err = redis.Bytes(conn.Do("GET", pe.key()))
		if err == redis.ErrNil {
			bytes, err = nil, nil
		}
		return
	})
	if err != nil || bytes == nil {
		return false, err
	}
	if err := json.Unmarshal(bytes, pe); err != nil {
		return false, fmt.Errorf("corrupt cache entry for %q: %v", pe.PuzzleId, err)
	}
	return true, nil
}

// cacheInsert writes the entry to the cache with the TTL.
func (pe *PuzzleEntry) cacheInsert() error {
	bytes, err := json.Marshal(pe)
	if err != nil {
		return err
	}
	return redisExecute(func(conn redis.Conn) error {
		_, err := conn.Do("SETEX", pe.key(), cacheTTL, bytes)
		return err
	})
}

/*

database tier

*/

// databaseLoad fills the entry from the database.
func (pe *PuzzleEntry) databaseLoad(ctx context.Context) error {
	var givens, solution string
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx,
			"SELECT name, givens, solution, uniqueSolution, created FROM puzzles "+
				"WHERE puzzleId = $1", pe.PuzzleId).
			Scan(&pe.Name, &givens, &solution, &pe.Unique, &pe.Created)
	})
	if err == pgx.ErrNoRows {
		return ErrPuzzleNotFound
	}
	if err != nil {
		return fmt.Errorf("couldn't load puzzle %q: %v", pe.PuzzleId, err)
	}
	if pe.Givens, err = grid.Parse(givens); err != nil {
		return fmt.Errorf("corrupt givens for puzzle %q: %v", pe.PuzzleId, err)
	}
	if pe.Solution, err = grid.Parse(solution); err != nil {
		return fmt.Errorf("corrupt solution for puzzle %q: %v", pe.PuzzleId, err)
	}
	return nil
}

// databaseInsert stores the entry, replacing any prior entry with
// the same ID.
func (pe *PuzzleEntry) databaseInsert(ctx context.Context) error {
	err := pgExecute(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			"INSERT INTO puzzles (puzzleId, name, givens, solution, uniqueSolution, created) "+
				"VALUES ($1, $2, $3, $4, $5, $6) "+
				"ON CONFLICT (puzzleId) DO UPDATE SET "+
				"name = $2, givens = $3, solution = $4, uniqueSolution = $5, created = $6",
			pe.PuzzleId, pe.Name, grid.Flatten(pe.Givens), grid.Flatten(pe.Solution),
			pe.Unique, pe.Created)
		return err
	})
	if err != nil {
		return fmt.Errorf("couldn't save puzzle %q: %v", pe.PuzzleId, err)
	}
	return nil
}
