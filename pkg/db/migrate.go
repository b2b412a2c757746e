package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

const migrationsTable = "schema_migrations"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// runMigrations hydrates the schema, applying any migration files not yet
// recorded in the tracking table.
func (db *DB) runMigrations(ctx context.Context) error {
	conn, err := db.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %s", ErrFailedToInit, err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		version     TEXT PRIMARY KEY,
		applied_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, migrationsTable)); err != nil {
		return fmt.Errorf("%w: create tracking table: %s", ErrFailedToInit, err)
	}

	applied := make(map[string]struct{})

	rows, err := conn.Query(ctx, fmt.Sprintf(`SELECT version FROM %s`, migrationsTable))
	if err != nil {
		return fmt.Errorf("%w: list applied versions: %s", ErrFailedToInit, err)
	}

	for rows.Next() {
		var version string
		if err := rows.Scan(&version); err != nil {
			rows.Close()
			return fmt.Errorf("%w: scan applied version: %s", ErrFailedToInit, err)
		}

		applied[version] = struct{}{}
	}
	rows.Close()

	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("%w: read migrations: %s", ErrFailedToInit, err)
	}

	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)

	for _, name := range names {
		if _, ok := applied[name]; ok {
			continue
		}

		body, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return fmt.Errorf("%w: read %s: %s", ErrFailedToInit, name, err)
		}

		if _, err := conn.Exec(ctx, string(body)); err != nil {
			return fmt.Errorf("%w: apply %s: %s", ErrFailedToInit, name, err)
		}

		if _, err := conn.Exec(ctx,
			fmt.Sprintf(`INSERT INTO %s (version) VALUES ($1)`, migrationsTable), name); err != nil {
			return fmt.Errorf("%w: record %s: %s", ErrFailedToInit, name, err)
		}

		db.logger.Info().Str("migration", name).Msg("Applied schema migration")
	}

	return nil
}
