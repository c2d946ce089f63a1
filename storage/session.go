// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/google/uuid"
	"github.com/validoku/validoku/grid"
)

/*

Sessions

A session is one client's workspace: the puzzle they are working
on and their current board, with every prior board kept as a step
so mistakes can be backed out server-side.  Sessions live
entirely in Redis - the engine stays stateless and the durable
puzzle library stays in Postgres; losing the cache only loses
in-progress workspaces.

*/

// DefaultPuzzleId is the library puzzle a fresh session starts
// on.  It is one of the seeded samples, so it always exists once
// dbprep has run.
const DefaultPuzzleId = "1-star"

// A Session tracks one client's current position working a
// puzzle.  The exported scalar fields are persisted in the
// session's Redis hash; the board steps are a parallel Redis
// list.
type Session struct {
	SID     string // session ID
	PID     string // ID of the puzzle being worked
	Step    int    // current step, 1-based
	Created string // RFC3339 time when the session was created
	Saved   string // RFC3339 time when the session was last saved

	Board []int `redis:"-"` // working board at the current step
}

// NewSessionId mints a fresh session ID.
func NewSessionId() string {
	return uuid.NewString()
}

func (session *Session) key() string {
	return "session:" + session.SID
}

func (session *Session) stepsKey() string {
	return "steps:" + session.SID
}

// Lookup finds the session for an ID, or creates a fresh one on
// the default puzzle if the ID is unknown.  The returned session
// always has a usable working board.
func Lookup(ctx context.Context, sid string) (*Session, error) {
	session := &Session{SID: sid}
	var fields []interface{}
	var bytes []byte
	err := redisExecute(func(conn redis.Conn) (err error) {
		fields, err = redis.Values(conn.Do("HGETALL", session.key()))
		if err != nil || len(fields) == 0 {
			return err
		}
		if err = redis.ScanStruct(fields, session); err != nil {
			return err
		}
		bytes, err = redis.Bytes(conn.Do("LINDEX", session.stepsKey(), -1))
		if err == redis.ErrNil {
			bytes, err = nil, nil
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't look up session %q: %v", sid, err)
	}
	if len(fields) == 0 || bytes == nil {
		// unknown (or partially expired) session: start fresh
		session = &Session{SID: sid, Created: time.Now().Format(time.RFC3339)}
		if err := session.StartPuzzle(ctx, DefaultPuzzleId); err != nil {
			return nil, err
		}
		return session, nil
	}
	if err := json.Unmarshal(bytes, &session.Board); err != nil {
		return nil, fmt.Errorf("corrupt working board for session %q: %v", sid, err)
	}
	return session, nil
}

// StartPuzzle switches the session to the given library puzzle
// and resets the working board to its givens, dropping any prior
// steps.
func (session *Session) StartPuzzle(ctx context.Context, pid string) error {
	pe, err := LoadPuzzle(ctx, pid)
	if err != nil {
		return err
	}
	session.PID = pe.PuzzleId
	session.Board = append([]int(nil), pe.Givens...)
	session.Step = 1
	session.Saved = time.Now().Format(time.RFC3339)
	bytes, _ := json.Marshal(session.Board)
	err = redisExecute(func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		conn.Send("DEL", session.stepsKey())
		_, err = conn.Do("RPUSH", session.stepsKey(), bytes)
		return
	})
	if err != nil {
		return fmt.Errorf("couldn't reset session %q: %v", session.SID, err)
	}
	log.WithFields(map[string]interface{}{
		"session": session.SID,
		"puzzle":  session.PID,
	}).Info("session started puzzle")
	return nil
}

// SetCell records a cell entry (or erasure, with value 0) as a
// new step.  Cells holding givens of the underlying puzzle can be
// overwritten here; whether that's allowed is the caller's rule,
// not the store's.
func (session *Session) SetCell(index, value int) error {
	if index < 0 || index >= grid.CellCount {
		return fmt.Errorf("cell index %d out of range 0-%d", index, grid.CellCount-1)
	}
	if value < 0 || value > grid.SideLength {
		return fmt.Errorf("cell value %d out of range 0-%d", value, grid.SideLength)
	}
	next := append([]int(nil), session.Board...)
	next[index] = value
	session.Board = next
	session.Step++
	session.Saved = time.Now().Format(time.RFC3339)
	bytes, _ := json.Marshal(session.Board)
	err := redisExecute(func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		_, err = conn.Do("RPUSH", session.stepsKey(), bytes)
		return
	})
	if err != nil {
		return fmt.Errorf("couldn't save session %q step %d: %v", session.SID, session.Step, err)
	}
	return nil
}

// Undo removes the last step and restores the prior working
// board.  Undoing past the first step is a no-op.
func (session *Session) Undo() error {
	if session.Step <= 1 {
		return nil
	}
	session.Step--
	session.Saved = time.Now().Format(time.RFC3339)
	var bytes []byte
	err := redisExecute(func(conn redis.Conn) (err error) {
		conn.Send("HMSET", redis.Args{}.Add(session.key()).AddFlat(session)...)
		conn.Send("LTRIM", session.stepsKey(), 0, -2)
		bytes, err = redis.Bytes(conn.Do("LINDEX", session.stepsKey(), -1))
		return
	})
	if err != nil {
		return fmt.Errorf("couldn't revert session %q to step %d: %v", session.SID, session.Step, err)
	}
	if err := json.Unmarshal(bytes, &session.Board); err != nil {
		return fmt.Errorf("corrupt step %d for session %q: %v", session.Step, session.SID, err)
	}
	return nil
}

// Conflicts reports the duplicate-value conflicts on the working
// board.
func (session *Session) Conflicts() []grid.Conflict {
	return grid.FindConflicts(session.Board)
}

// Verdict runs the full validation pipeline on the working board.
func (session *Session) Verdict() grid.Verdict {
	return grid.ValidatePuzzle(session.Board)
}

// Check compares the working board against the stored solution of
// the session's puzzle, flagging filled cells that disagree.
func (session *Session) Check(ctx context.Context) (grid.Comparison, error) {
	pe, err := LoadPuzzle(ctx, session.PID)
	if err != nil {
		return grid.Comparison{}, err
	}
	return grid.CompareBoards(session.Board, pe.Solution), nil
}
