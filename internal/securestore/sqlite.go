package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ankit-0903/sentinel-vault/internal/common"
	"github.com/ankit-0903/sentinel-vault/internal/securestore/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the file-backed fallback for hosts without a usable OS
// keyring. Records live in a single secrets table keyed by (namespace, key).
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore wraps an already-opened database handle. Schema setup is
// the caller's concern; see OpenSQLiteStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// OpenSQLiteStore opens (creating if necessary) the database at dsn and
// applies the embedded migrations.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", common.ErrorStore, dsn, err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return NewSQLiteStore(db), nil
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorStore, err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("%w: migrations: %v", common.ErrorStore, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Set(ctx context.Context, namespace, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO secrets (namespace, key, value) VALUES (?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value
	`, namespace, key, value)
	if err != nil {
		return fmt.Errorf("%w: set %s/%s: %v", common.ErrorStore, namespace, key, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM secrets WHERE namespace = ? AND key = ?`,
		namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: get %s/%s: %v", common.ErrorStore, namespace, key, err)
	}
	return value, true, nil
}

func (s *SQLiteStore) Delete(ctx context.Context, namespace, key string) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM secrets WHERE namespace = ? AND key = ?`,
		namespace, key)
	if err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", common.ErrorStore, namespace, key, err)
	}
	return nil
}
