// validoku - a Sudoku puzzle validation service.
// Licensed under the MIT license.  See the LICENSE file for details.

package dbprep

import (
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/viper"
)

// getMigrateParams figures out the database URL and the directory
// holding the migration files.  DBPREP_PATH overrides the latter;
// otherwise we look for the migrations relative to wherever we
// were started from.
func getMigrateParams() (url string, path string) {
	viper.SetDefault("DATABASE_URL", "postgres://localhost/validoku?sslmode=disable")
	viper.AutomaticEnv()
	url = viper.GetString("DATABASE_URL")
	path = viper.GetString("DBPREP_PATH")
	if path == "" {
		if fi, err := os.Stat("dbprep/migrations"); err == nil && fi.IsDir() {
			// running from the repository root
			path = "dbprep/migrations"
		} else {
			path = "migrations"
		}
	}
	return
}

// newMigrator opens a migrate instance on the configured database
// and migration source.
func newMigrator() (*migrate.Migrate, error) {
	url, path := getMigrateParams()
	m, err := migrate.New("file://"+path, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't open migrator for %q: %v", path, err)
	}
	return m, nil
}

// SchemaUp creates (or updates) the database schema.
func SchemaUp() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("table creation had errors: %v", err)
	}
	return nil
}

// SchemaDown tears the database schema down.
func SchemaDown() error {
	m, err := newMigrator()
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Down(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("table deletion had errors: %v", err)
	}
	return nil
}

// SchemaVersion returns the schema version of the database, 0 if
// no migrations have been applied.
func SchemaVersion() (uint, error) {
	m, err := newMigrator()
	if err != nil {
		return 0, err
	}
	defer m.Close()
	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if dirty {
		return version, fmt.Errorf("schema version %d is dirty", version)
	}
	return version, nil
}
