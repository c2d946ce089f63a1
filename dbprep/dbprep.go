// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

// Package dbprep gets the service's storage ready for use: it
// brings the database schema up to date, loads the sample puzzle
// library, and can tear everything back down for a clean start.
// The server runs EnsureData on startup, so a fresh deployment
// needs no manual database setup.
package dbprep

import (
	"fmt"
)

// EnsureData brings the schema up to the current version and, if
// the schema changed, loads the sample data.  Safe to call on
// every startup.
func EnsureData() error {
	inVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial schema version: %v", err)
	}
	if err := SchemaUp(); err != nil {
		return fmt.Errorf("couldn't install schema: %v", err)
	}
	outVersion, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get final schema version: %v", err)
	}
	if outVersion == 0 {
		return fmt.Errorf("schema still at version 0 after migration")
	}
	if inVersion != outVersion {
		if err := DataUp(); err != nil {
			return fmt.Errorf("couldn't load sample data: %v", err)
		}
	}
	return nil
}

// RemoveData tears the schema (and with it all data) down.
func RemoveData() error {
	version, err := SchemaVersion()
	if err != nil {
		return fmt.Errorf("couldn't get initial schema version: %v", err)
	}
	if version > 0 {
		if err := SchemaDown(); err != nil {
			return fmt.Errorf("couldn't remove tables: %v", err)
		}
	}
	return nil
}

// ReinitializeAll flushes the cache, drops the database, and
// rebuilds both from scratch.
func ReinitializeAll() error {
	if err := ClearCache(); err != nil {
		return fmt.Errorf("couldn't clear cache: %v", err)
	}
	if err := RemoveData(); err != nil {
		return fmt.Errorf("couldn't clear database: %v", err)
	}
	if err := EnsureData(); err != nil {
		return fmt.Errorf("couldn't load database: %v", err)
	}
	return nil
}
