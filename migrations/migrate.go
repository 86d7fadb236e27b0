// Package migrations embeds the schema of both databases: the poster
// server's PostgreSQL schema under server/ and the client cache's SQLite
// schema under client/.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Dialect and directory pairs understood by [Migrate].
const (
	ServerDialect = "pgx"
	ServerDir     = "server"
	ClientDialect = "sqlite3"
	ClientDir     = "client"
)

// ErrNilDB is returned when no connection is handed over.
var ErrNilDB = errors.New("db is nil")

// MigrateServer applies the PostgreSQL schema.
func MigrateServer(db *sql.DB) error {
	return Migrate(db, ServerDialect, ServerDir)
}

// MigrateClient applies the SQLite cache schema.
func MigrateClient(db *sql.DB) error {
	return Migrate(db, ClientDialect, ClientDir)
}

// Migrate runs every pending migration in dir using dialect. goose keeps
// its configuration in package state, so callers must not migrate two
// databases concurrently.
func Migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
