package eventlog

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

// The event log schema ships embedded in the binary; Open applies it on
// every start, so a missing or brand-new database file is never an error.
//
//go:embed migrations/*.sql
var migrationFiles embed.FS

// MigrateUp brings the event log database to the current schema.
func MigrateUp(db *sql.DB) error {
	return applyMigrations(db, ".up.sql")
}

// MigrateDown tears the event log schema back down, newest first.
func MigrateDown(db *sql.DB) error {
	entries, err := migrationEntries(".down.sql")
	if err != nil {
		return err
	}
	sort.Sort(sort.Reverse(sort.StringSlice(entries)))
	return execMigrations(db, entries)
}

func applyMigrations(db *sql.DB, suffix string) error {
	entries, err := migrationEntries(suffix)
	if err != nil {
		return err
	}
	sort.Strings(entries)
	return execMigrations(db, entries)
}

func migrationEntries(suffix string) ([]string, error) {
	entries, err := fs.Glob(migrationFiles, "migrations/*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("glob event log migrations: %w", err)
	}
	return entries, nil
}

func execMigrations(db *sql.DB, entries []string) error {
	for _, name := range entries {
		sqlBytes, readErr := migrationFiles.ReadFile(name)
		if readErr != nil {
			return fmt.Errorf("read event log migration %s: %w", name, readErr)
		}
		if _, execErr := db.Exec(string(sqlBytes)); execErr != nil {
			return fmt.Errorf("apply event log migration %s: %w", name, execErr)
		}
	}
	return nil
}
