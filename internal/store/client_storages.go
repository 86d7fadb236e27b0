package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
)

// ClientStorages groups all client-side repositories into a single value
// that can be passed around the service layer. All of them share one
// SQLite connection and therefore one writer lock.
type ClientStorages struct {
	// Posters is the poster cache.
	Posters LocalPosterRepository
	// Checkpoint is the pull watermark.
	Checkpoint CheckpointRepository
	// Session is the persisted login.
	Session SessionRepository

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs the repositories on top of the shared connection.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: migration failed: %w", ErrLocalStorageFailure, err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Posters:    NewLocalPosterRepository(db, logger),
		Checkpoint: NewCheckpointRepository(db),
		Session:    NewSessionRepository(db),
		db:         db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}
