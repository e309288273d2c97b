// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package favorites

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// DBFile is the SQLite database file name inside the data directory.
const DBFile = "favorites.db"

// Compile-time interface check.
var _ Backend = (*SQLiteBackend)(nil)

// SQLiteBackend stores values in a kv table of a local SQLite database.
type SQLiteBackend struct {
	db *sqlx.DB
}

type kvRow struct {
	Key       string `db:"key"`
	Value     []byte `db:"value"`
	UpdatedAt string `db:"updated_at"`
}

// OpenSQLite opens or creates dir/favorites.db and applies pending
// schema migrations.
func OpenSQLite(dir string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dir, DBFile)
	db, err := sqlx.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := runMigrations(db.DB); err != nil {
		db.Close()
		return nil, err
	}
	return &SQLiteBackend{db: db}, nil
}

// runMigrations applies the embedded goose migrations.
func runMigrations(db *sql.DB) error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrationsFS)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

// Load returns the stored value, or (nil, nil) when key has no row.
func (b *SQLiteBackend) Load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := b.db.GetContext(ctx, &value, `SELECT value FROM kv WHERE key = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	return value, nil
}

// Save upserts the value for key.
func (b *SQLiteBackend) Save(ctx context.Context, key string, data []byte) error {
	row := kvRow{
		Key:       key,
		Value:     data,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	_, err := b.db.NamedExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (:key, :value, :updated_at)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		row,
	)
	if err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}
