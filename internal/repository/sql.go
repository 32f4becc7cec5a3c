package repository

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	// Database drivers.
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder syntax and driver for SQLStore.
type Dialect string

// Supported SQL dialects.
const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

// placeholder returns the n-th (1-based) bind parameter for the dialect.
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

const createSlotsTable = `CREATE TABLE IF NOT EXISTS cache_slots (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at BIGINT NOT NULL
)`

// SQLStore keeps slots in a cache_slots table of a SQLite or PostgreSQL database.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect

	getQuery    string
	upsertQuery string
	deleteQuery string
}

// NewSQLite opens (or creates) a SQLite database file and prepares the slots table.
func NewSQLite(ctx context.Context, path string) (*SQLStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database: %s", path)
	}

	// A single writer avoids SQLITE_BUSY under concurrent persistence.
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{"PRAGMA journal_mode=WAL", "PRAGMA busy_timeout=5000"} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, errors.Wrapf(err, "failed to apply %q", pragma)
		}
	}

	return newSQLStore(ctx, db, DialectSQLite)
}

// NewPostgres connects to PostgreSQL and prepares the slots table.
func NewPostgres(ctx context.Context, dsn string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open postgres database")
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(2 * time.Hour)
	db.SetConnMaxIdleTime(15 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping postgres database")
	}

	return newSQLStore(ctx, db, DialectPostgres)
}

// NewSQLStore wraps an already opened database. The slots table is created if missing.
func NewSQLStore(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLStore, error) {
	return newSQLStore(ctx, db, dialect)
}

func newSQLStore(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLStore, error) {
	if _, err := db.ExecContext(ctx, createSlotsTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create cache_slots table")
	}

	p := dialect.placeholder
	return &SQLStore{
		db:       db,
		dialect:  dialect,
		getQuery: "SELECT value FROM cache_slots WHERE name = " + p(1),
		upsertQuery: "INSERT INTO cache_slots (name, value, updated_at) VALUES (" + p(1) + ", " + p(2) + ", " + p(3) + ") " +
			"ON CONFLICT (name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at",
		deleteQuery: "DELETE FROM cache_slots WHERE name = " + p(1),
	}, nil
}

// Dialect returns the store's SQL dialect.
func (s *SQLStore) Dialect() Dialect {
	return s.dialect
}

// Get returns the slot value.
func (s *SQLStore) Get(ctx context.Context, name string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.getQuery, name).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, ioError(err, "read", name)
	}
	return value, true, nil
}

// Set creates or replaces the slot.
func (s *SQLStore) Set(ctx context.Context, name, value string) error {
	if _, err := s.db.ExecContext(ctx, s.upsertQuery, name, value, time.Now().UnixMilli()); err != nil {
		return ioError(err, "write", name)
	}
	return nil
}

// Remove deletes the slot.
func (s *SQLStore) Remove(ctx context.Context, name string) error {
	if _, err := s.db.ExecContext(ctx, s.deleteQuery, name); err != nil {
		return ioError(err, "remove", name)
	}
	return nil
}

// HealthCheck pings the database.
func (s *SQLStore) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.PingContext(ctx)
}

// Close closes the database.
func (s *SQLStore) Close(context.Context) error {
	return s.db.Close()
}
