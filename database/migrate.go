package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed migrations/sqlite/*.sql migrations/mysql/*.sql
var migrationFS embed.FS

const historyTable = `CREATE TABLE IF NOT EXISTS schema_migrations (
	version    VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// Migrate applies every pending migration script for the given driver, in
// lexical order, each inside its own transaction together with its history
// row. Scripts already recorded in schema_migrations are skipped, so running
// it again is a no-op. Any failure leaves the history consistent with what
// actually applied; callers treat an error as fatal at startup.
func Migrate(ctx context.Context, db *sql.DB, driverName string) error {
	dir, err := dialectDir(driverName)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, historyTable); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	names, err := fs.Glob(migrationFS, dir+"/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		version := strings.TrimSuffix(name[len(dir)+1:], ".sql")
		if applied[version] {
			continue
		}
		if err := applyOne(ctx, db, name, version); err != nil {
			return fmt.Errorf("migration %s: %w", version, err)
		}
	}

	return nil
}

func dialectDir(driverName string) (string, error) {
	switch driverName {
	case "sqlite3":
		return "migrations/sqlite", nil
	case "mysql":
		return "migrations/mysql", nil
	default:
		return "", fmt.Errorf("no migrations for driver %q", driverName)
	}
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("scan schema_migrations: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}

func applyOne(ctx context.Context, db *sql.DB, name, version string) error {
	script, err := migrationFS.ReadFile(name)
	if err != nil {
		return err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, string(script)); err != nil {
		tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
