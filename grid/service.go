// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package grid

import (
	"encoding/json"
	"fmt"
	"net/http"
)

/*

RESTful wrappers

These handlers expose the engine to web callers.  Each reads a
JSON-encoded request body, runs the matching engine function, and
writes the result as a 200 response.  Handlers also return the
result to the golang caller, so server code can act on it (cache
a verdict, log an outcome) without re-decoding its own response.

Undecodable bodies and wrong-sized boards get a 400 with a JSON
error body.  Nothing here panics: the engine is total over
81-cell boards, and everything else is caught at the boundary.

*/

// A BoardRequest is the body for the single-board endpoints:
// validate, solve, and conflicts.
type BoardRequest struct {
	Board []int `json:"board"`
}

// A CompareRequest is the body for the compare endpoint.
type CompareRequest struct {
	Board    []int `json:"board"`
	Solution []int `json:"solution"`
}

// A ConflictReport is the response of the conflicts endpoint: the
// pairwise conflicts plus the flattened duplicate set for
// highlighting.
type ConflictReport struct {
	Valid      bool       `json:"valid"`
	Conflicts  []Conflict `json:"conflicts"`
	Duplicates []int      `json:"duplicates"`
}

// A SolveResult is the response of the solve endpoint.  Solution
// is absent when the board has no completion.
type SolveResult struct {
	Solved   bool  `json:"solved"`
	Solution []int `json:"solution,omitempty"`
}

// ValidateHandler is a POST handler that reads a board and
// responds with its full ValidatePuzzle verdict.
func ValidateHandler(w http.ResponseWriter, r *http.Request) (Verdict, error) {
	board, err := readBoard(w, r)
	if err != nil {
		return Verdict{}, err
	}
	v := ValidatePuzzle(board)
	return v, writeJSON(w, v)
}

// SolveHandler is a POST handler that reads a board and responds
// with one deterministic completion, or with solved:false when
// none exists.  Conflicted boards are rejected here rather than
// handed to the solver, whose behavior on them is unspecified.
func SolveHandler(w http.ResponseWriter, r *http.Request) (SolveResult, error) {
	board, err := readBoard(w, r)
	if err != nil {
		return SolveResult{}, err
	}
	if !IsValid(board) {
		return SolveResult{}, writeError(w, http.StatusBadRequest, ReasonConflicts)
	}
	result := SolveResult{}
	if s := Solve(board); s != nil {
		result.Solved, result.Solution = true, s
	}
	return result, writeJSON(w, result)
}

// ConflictsHandler is a POST handler that reads a board and
// responds with its conflict report.
func ConflictsHandler(w http.ResponseWriter, r *http.Request) (ConflictReport, error) {
	board, err := readBoard(w, r)
	if err != nil {
		return ConflictReport{}, err
	}
	report := ConflictReport{
		Conflicts:  FindConflicts(board),
		Duplicates: FindDuplicates(board),
	}
	report.Valid = len(report.Conflicts) == 0
	return report, writeJSON(w, report)
}

// CompareHandler is a POST handler that reads a working board and
// a known solution and responds with the comparison result.  The
// length gate lives in CompareBoards itself, so malformed lengths
// come back as a 200 with valid:false, exactly as the engine
// reports them.
func CompareHandler(w http.ResponseWriter, r *http.Request) (Comparison, error) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return Comparison{}, writeError(w, http.StatusBadRequest, "request decode: "+err.Error())
	}
	c := CompareBoards(req.Board, req.Solution)
	return c, writeJSON(w, c)
}

// readBoard decodes the single-board request body and checks the
// one thing the engine doesn't: that the board is 81 cells.
func readBoard(w http.ResponseWriter, r *http.Request) ([]int, error) {
	var req BoardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, writeError(w, http.StatusBadRequest, "request decode: "+err.Error())
	}
	if len(req.Board) != CellCount {
		return nil, writeError(w, http.StatusBadRequest,
			fmt.Sprintf("board has %d cells, expected %d", len(req.Board), CellCount))
	}
	for _, v := range req.Board {
		if v < 0 || v > SideLength {
			return nil, writeError(w, http.StatusBadRequest,
				fmt.Sprintf("cell value %d out of range 0-%d", v, SideLength))
		}
	}
	return req.Board, nil
}

// writeJSON sends v as a 200 JSON response.
func writeJSON(w http.ResponseWriter, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// response already committed; nothing to do but tell the caller
		return fmt.Errorf("response encode: %v", err)
	}
	return nil
}

// writeError sends a JSON error body with the given status and
// returns the message as an error for the golang caller.
func writeError(w http.ResponseWriter, status int, msg string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
	return fmt.Errorf("%s", msg)
}
