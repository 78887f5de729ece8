package sqlite

import (
	"context"
	"database/sql"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
)

const migrationTable = "schema_migrations"

// applyMigrations executes each embedded *.sql file at most once, in name order
func applyMigrations(sqlDB *sql.DB, migrationFS fs.FS) error {
	entries, err := fs.ReadDir(migrationFS, ".")
	if err != nil {
		return errors.Wrap(err, "read migrations dir")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := sqlDB.Exec(`
CREATE TABLE IF NOT EXISTS ` + migrationTable + ` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
);
`); err != nil {
		return errors.Wrap(err, "ensure migration table")
	}

	for _, file := range files {
		var count int
		if err := sqlDB.QueryRow(
			"SELECT COUNT(1) FROM "+migrationTable+" WHERE name = ?", file,
		).Scan(&count); err != nil {
			return errors.Wrapf(err, "check migration %s", file)
		}
		if count > 0 {
			continue
		}

		content, err := fs.ReadFile(migrationFS, file)
		if err != nil {
			return errors.Wrapf(err, "read migration %s", file)
		}

		upSQL := extractUpMigration(string(content))
		if strings.TrimSpace(upSQL) == "" {
			continue
		}

		tx, err := sqlDB.BeginTx(context.Background(), nil)
		if err != nil {
			return errors.Wrapf(err, "begin migration %s", file)
		}
		if _, err := tx.Exec(upSQL); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "exec migration %s", file)
		}
		if _, err := tx.Exec(
			"INSERT INTO "+migrationTable+" (name, applied_at) VALUES (?, ?)",
			file, time.Now().UTC().UnixMilli(),
		); err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "record migration %s", file)
		}
		if err := tx.Commit(); err != nil {
			return errors.Wrapf(err, "commit migration %s", file)
		}
	}

	return nil
}

// extractUpMigration returns the SQL between the Up and Down markers
func extractUpMigration(content string) string {
	const up, down = "-- +migrate Up", "-- +migrate Down"

	upIdx := strings.Index(content, up)
	if upIdx == -1 {
		return content
	}
	rest := content[upIdx+len(up):]
	if downIdx := strings.Index(rest, down); downIdx != -1 {
		return rest[:downIdx]
	}
	return rest
}
