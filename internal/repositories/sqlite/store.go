// Package sqlite provides a single-file record store for local use. It backs
// the world, campaign and character repositories with one database whose
// foreign keys cascade deletes from worlds down to characters.
package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/dnd-ai-toolkit/internal/errors"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/campaigns"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/characters"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/sqlite/migrations"
	"github.com/KirkDiggler/dnd-ai-toolkit/internal/repositories/worlds"
)

const memoryPath = ":memory:"

// Store provides SQLite-backed record persistence.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a record store at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("storage path is required")
	}

	cleanPath := path
	if path != memoryPath {
		cleanPath = filepath.Clean(path)
	}
	dsn := cleanPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"

	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	if path == memoryPath {
		// every pooled connection would otherwise get its own database
		sqlDB.SetMaxOpenConns(1)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "ping sqlite db")
	}

	if err := applyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, errors.Wrap(err, "run migrations")
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Worlds returns the store's world repository
func (s *Store) Worlds() worlds.Repository {
	return &worldRepository{db: s.sqlDB}
}

// Campaigns returns the store's campaign repository
func (s *Store) Campaigns() campaigns.Repository {
	return &campaignRepository{db: s.sqlDB}
}

// Characters returns the store's character repository
func (s *Store) Characters() characters.Repository {
	return &characterRepository{db: s.sqlDB}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// mapError converts driver errors into toolkit error codes
func mapError(err error, message string) error {
	if err == nil {
		return nil
	}
	if err == context.Canceled || err == context.DeadlineExceeded {
		return errors.WrapWithCode(err, errors.CodeCanceled, message)
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "PRIMARY KEY constraint failed"):
		return errors.WrapWithCode(err, errors.CodeAlreadyExists, message)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return errors.WrapWithCode(err, errors.CodeFailedPrecondition, message)
	case strings.Contains(msg, "database is locked"),
		strings.Contains(msg, "SQLITE_BUSY"):
		return errors.WrapWithCode(err, errors.CodeUnavailable, message)
	default:
		return errors.Wrap(err, message)
	}
}
