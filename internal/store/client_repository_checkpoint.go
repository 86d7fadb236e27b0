package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
)

// checkpointRepository keeps the watermark as Unix milliseconds in the
// sync_state table. Zero means "never synchronized".
type checkpointRepository struct {
	db *DB
}

// NewCheckpointRepository returns the SQLite-backed checkpoint.
func NewCheckpointRepository(db *DB) CheckpointRepository {
	return &checkpointRepository{db: db}
}

func (c *checkpointRepository) Get(ctx context.Context) (time.Time, error) {
	var millis int64
	err := c.db.QueryRowContext(ctx, getCheckpoint, checkpointKey).Scan(&millis)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "checkpointRepository.Get").Msg("failed to read checkpoint")
		return time.Time{}, storageFailure(ErrExecutingQuery, err)
	}

	return fromMillis(millis), nil
}

func (c *checkpointRepository) Advance(ctx context.Context, t time.Time) error {
	if _, err := c.db.exec(ctx, advanceCheckpoint, checkpointKey, toMillis(t)); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "checkpointRepository.Advance").
			Time("checkpoint", t).
			Msg("failed to advance checkpoint")
		return storageFailure(ErrExecutingStatement, err)
	}

	return nil
}

func (c *checkpointRepository) Reset(ctx context.Context) error {
	if _, err := c.db.exec(ctx, resetCheckpoint, checkpointKey); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "checkpointRepository.Reset").Msg("failed to reset checkpoint")
		return storageFailure(ErrExecutingStatement, err)
	}

	return nil
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}

func fromMillis(millis int64) time.Time {
	if millis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis)
}
