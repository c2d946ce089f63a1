// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

// The validoku server: the grid engine's validation endpoints
// plus cookie-based sessions for working puzzles from the stored
// library.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/validoku/validoku/grid"
	"github.com/validoku/validoku/storage"
)

var log = logrus.New()

const cookieName = "validokuSession"

func main() {
	// local development reads endpoints from .env; deployed
	// servers set real environment variables
	godotenv.Load()
	viper.SetDefault("PORT", "")
	viper.AutomaticEnv()

	ctx := context.Background()
	cacheId, databaseId, err := storage.Connect(ctx)
	if err != nil {
		log.WithError(err).Fatal("couldn't connect to storage")
	}
	defer storage.Close()
	log.WithFields(logrus.Fields{
		"cache":    cacheId,
		"database": databaseId,
	}).Info("storage connected")

	mux := http.NewServeMux()

	// stateless engine endpoints
	mux.HandleFunc("/api/validate", logged(func(w http.ResponseWriter, r *http.Request) error {
		_, err := grid.ValidateHandler(w, r)
		return err
	}))
	mux.HandleFunc("/api/solve", logged(func(w http.ResponseWriter, r *http.Request) error {
		_, err := grid.SolveHandler(w, r)
		return err
	}))
	mux.HandleFunc("/api/conflicts", logged(func(w http.ResponseWriter, r *http.Request) error {
		_, err := grid.ConflictsHandler(w, r)
		return err
	}))
	mux.HandleFunc("/api/compare", logged(func(w http.ResponseWriter, r *http.Request) error {
		_, err := grid.CompareHandler(w, r)
		return err
	}))

	// library and session endpoints
	mux.HandleFunc("/api/puzzles", logged(puzzlesHandler))
	mux.HandleFunc("/api/session", logged(sessionHandler))
	mux.HandleFunc("/api/session/", logged(sessionHandler))

	port := viper.GetString("PORT")
	if port == "" {
		// running locally in dev mode
		port = "localhost:8080"
	} else {
		// running as a true server
		port = ":" + port
	}

	server := &http.Server{Addr: port, Handler: mux}

	// shut down cleanly on interrupt so the storage pools close
	done := make(chan struct{})
	go func() {
		interrupts := make(chan os.Signal, 1)
		signal.Notify(interrupts, os.Interrupt, syscall.SIGTERM)
		sig := <-interrupts
		log.WithField("signal", sig).Info("shutting down")
		timeout, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		server.Shutdown(timeout)
		close(done)
	}()

	log.WithField("address", port).Info("listening")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("listener failure")
	}
	<-done
}

// logged wraps a handler with request logging.  Handler errors
// have already been reported to the client; here they just get a
// log line.
func logged(handler func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		err := handler(w, r)
		entry := log.WithFields(logrus.Fields{
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start),
		})
		if err != nil {
			entry.WithError(err).Warn("request failed")
		} else {
			entry.Info("request handled")
		}
	}
}

// sessionSelect finds the client's session from their cookie,
// minting a cookie (and thus a fresh session) as needed.
func sessionSelect(w http.ResponseWriter, r *http.Request) (*storage.Session, error) {
	var sid string
	if sc, err := r.Cookie(cookieName); err == nil && sc.Value != "" {
		sid = sc.Value
	} else {
		sid = storage.NewSessionId()
		http.SetCookie(w, &http.Cookie{Name: cookieName, Value: sid, Path: "/"})
	}
	return storage.Lookup(r.Context(), sid)
}

// sessionState is what the session endpoints return: the working
// position plus its current conflicts, so clients don't need a
// second round trip to mark errors.
type sessionState struct {
	PuzzleId  string          `json:"puzzleId"`
	Step      int             `json:"step"`
	Board     []int           `json:"board"`
	Conflicts []grid.Conflict `json:"conflicts,omitempty"`
}

// sessionHandler dispatches the /api/session endpoints.
func sessionHandler(w http.ResponseWriter, r *http.Request) error {
	session, err := sessionSelect(w, r)
	if err != nil {
		return serverError(w, err)
	}
	op := strings.TrimPrefix(r.URL.Path, "/api/session")
	op = strings.Trim(op, "/")

	switch {
	case op == "":
		// fall through to return the session state
	case strings.HasPrefix(op, "reset"):
		pid := strings.TrimPrefix(op, "reset")
		pid = strings.Trim(pid, "/")
		if pid == "" {
			pid = session.PID
		}
		if err := session.StartPuzzle(r.Context(), pid); err != nil {
			if err == storage.ErrPuzzleNotFound {
				return clientError(w, err)
			}
			return serverError(w, err)
		}
	case op == "cell":
		var entry struct {
			Index int `json:"index"`
			Value int `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			return clientError(w, fmt.Errorf("undecodable cell entry: %v", err))
		}
		if err := session.SetCell(entry.Index, entry.Value); err != nil {
			return clientError(w, err)
		}
	case op == "undo":
		if err := session.Undo(); err != nil {
			return serverError(w, err)
		}
	case op == "check":
		comparison, err := session.Check(r.Context())
		if err != nil {
			return serverError(w, err)
		}
		return writeJSON(w, comparison)
	case op == "verdict":
		return writeJSON(w, session.Verdict())
	default:
		err := fmt.Errorf("no such session operation %q", op)
		http.Error(w, err.Error(), http.StatusNotFound)
		return err
	}

	return writeJSON(w, sessionState{
		PuzzleId:  session.PID,
		Step:      session.Step,
		Board:     session.Board,
		Conflicts: session.Conflicts(),
	})
}

// puzzlesHandler lists the library on GET and adds a puzzle to it
// on POST.
func puzzlesHandler(w http.ResponseWriter, r *http.Request) error {
	switch r.Method {
	case http.MethodGet:
		ids, err := storage.PuzzleIds(r.Context())
		if err != nil {
			return serverError(w, err)
		}
		return writeJSON(w, ids)
	case http.MethodPost:
		var entry struct {
			PuzzleId string `json:"puzzleId"`
			Name     string `json:"name"`
			Givens   []int  `json:"givens"`
		}
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			return clientError(w, fmt.Errorf("undecodable puzzle: %v", err))
		}
		if entry.PuzzleId == "" {
			return clientError(w, fmt.Errorf("puzzle needs a puzzleId"))
		}
		pe, err := storage.SavePuzzle(r.Context(), entry.PuzzleId, entry.Name, entry.Givens)
		if err != nil {
			return clientError(w, err)
		}
		return writeJSON(w, pe)
	default:
		err := fmt.Errorf("method %s not allowed", r.Method)
		http.Error(w, err.Error(), http.StatusMethodNotAllowed)
		return err
	}
}

func writeJSON(w http.ResponseWriter, value interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(value)
}

func clientError(w http.ResponseWriter, err error) error {
	http.Error(w, err.Error(), http.StatusBadRequest)
	return err
}

func serverError(w http.ResponseWriter, err error) error {
	http.Error(w, err.Error(), http.StatusInternalServerError)
	return err
}
