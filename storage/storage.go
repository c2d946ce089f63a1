// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package storage persists the validation service's state in two
// tiers: Redis for the fast-moving parts (client sessions and a
// cache of puzzle entries) and Postgres for the durable parts
// (the puzzle library itself).  The grid engine stays pure; every
// piece of cross-call state the service needs lives here.
package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/validoku/validoku/dbprep"
)

var log = logrus.New()

// Connection state.  Both pools are created once by Connect and
// shared by every session and puzzle operation afterwards.
var (
	rdPool    *redis.Pool
	pgPool    *pgxpool.Pool
	connMutex sync.Mutex
)

// Config reads the storage endpoints from the environment (via
// viper, so commands can also set them from flags or files):
// REDIS_URL for the cache, DATABASE_URL for the database.  Both
// have localhost defaults for development.
func Config() (redisURL, databaseURL string) {
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/")
	viper.SetDefault("DATABASE_URL", "postgres://localhost/validoku?sslmode=disable")
	viper.AutomaticEnv()
	return viper.GetString("REDIS_URL"), viper.GetString("DATABASE_URL")
}

// Connect prepares the database (schema plus seed data), then
// opens the Redis and Postgres pools.  It returns the endpoint
// IDs it connected to, for logging by the caller.
func Connect(ctx context.Context) (cacheId, databaseId string, err error) {
	connMutex.Lock()
	defer connMutex.Unlock()

	if err = dbprep.EnsureData(); err != nil {
		return "", "", fmt.Errorf("couldn't initialize database: %v", err)
	}

	redisURL, databaseURL := Config()

	rdPool = &redis.Pool{
		MaxIdle:     4,
		IdleTimeout: 240 * time.Second,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialURLContext(ctx, redisURL)
		},
		// Redis connections can go away without warning; ping
		// idle ones before handing them out.
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Minute {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}
	conn, err := rdPool.GetContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("couldn't connect to cache at %q: %v", redisURL, err)
	}
	if _, err = conn.Do("PING"); err != nil {
		conn.Close()
		return "", "", fmt.Errorf("couldn't connect to cache at %q: %v", redisURL, err)
	}
	conn.Close()

	pgPool, err = pgxpool.New(ctx, databaseURL)
	if err != nil {
		return "", "", fmt.Errorf("couldn't open database at %q: %v", databaseURL, err)
	}
	if err = pgPool.Ping(ctx); err != nil {
		return "", "", fmt.Errorf("couldn't connect to database at %q: %v", databaseURL, err)
	}
	return redisURL, databaseURL, nil
}

// Close shuts both pools down.  Safe to call more than once.
func Close() {
	connMutex.Lock()
	defer connMutex.Unlock()
	if pgPool != nil {
		pgPool.Close()
		pgPool = nil
	}
	if rdPool != nil {
		rdPool.Close()
		rdPool = nil
	}
}

// Connected reports whether Connect has been called successfully.
func Connected() bool {
	connMutex.Lock()
	defer connMutex.Unlock()
	return rdPool != nil && pgPool != nil
}

// redisExecute runs the body with a pooled Redis connection.
func redisExecute(body func(conn redis.Conn) error) error {
	if rdPool == nil {
		return fmt.Errorf("storage is not connected")
	}
	conn := rdPool.Get()
	defer conn.Close()
	return body(conn)
}

// pgExecute runs the body inside a single transaction, rolling
// back if the body errs out and committing otherwise.
func pgExecute(ctx context.Context, body func(tx pgx.Tx) error) error {
	if pgPool == nil {
		return fmt.Errorf("storage is not connected")
	}
	tx, err := pgPool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("couldn't open a transaction: %v", err)
	}
	defer tx.Rollback(ctx)
	if err := body(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
