package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/migrations"
)

// DB is the shared connection handle of every repository.
//
// When serializeWrites is set (the SQLite cache) every mutation takes
// writeMu: SQLite allows a single writer and a batch must never interleave
// with another write. Reads do not take the lock. PostgreSQL connections
// leave the flag off and rely on row locks instead.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	migrate            func(*sql.DB) error

	serializeWrites bool
	writeMu         sync.Mutex
}

// Migrate applies the schema that belongs to the connection's role.
func (db *DB) Migrate() error {
	if db.migrate == nil {
		return migrations.MigrateServer(db.DB)
	}
	return db.migrate(db.DB)
}

// ErrorClassification tells a caller whether a failed statement may succeed
// on a second attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

const (
	// one replay is enough for a busy SQLite file or a Postgres serialization
	// failure; anything still failing after that goes back to the caller
	maxWriteAttempts = 2
	writeRetryDelay  = 50 * time.Millisecond
)

// Classify reports whether err is worth retrying.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// exec runs a single mutating statement under the writer lock.
func (db *DB) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer db.lockWrites()()

	return db.ExecContext(ctx, query, args...)
}

// inWriteTx runs fn inside a transaction while holding the writer lock.
// The transaction is rolled back unless fn succeeds and the commit goes
// through. A failure the classifier marks as [Retryable] replays fn once in a
// fresh transaction, so fn must not leak state from an aborted attempt.
// Errors from fn are returned as-is.
func (db *DB) inWriteTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	defer db.lockWrites()()

	var err error
	for attempt := 1; attempt <= maxWriteAttempts; attempt++ {
		err = db.writeTxOnce(ctx, fn)
		if err == nil || db.Classify(err) != Retryable || attempt == maxWriteAttempts {
			return err
		}

		db.log().Warn().Err(err).
			Str("func", "DB.inWriteTx").
			Int("attempt", attempt).
			Msg("transient database error, replaying transaction")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(writeRetryDelay):
		}
	}

	return err
}

func (db *DB) writeTxOnce(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (db *DB) log() *logger.Logger {
	if db.logger == nil {
		return logger.Nop()
	}
	return db.logger
}

func (db *DB) lockWrites() (unlock func()) {
	if !db.serializeWrites {
		return func() {}
	}
	db.writeMu.Lock()
	return db.writeMu.Unlock
}
