package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/models"
)

type localPosterRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalPosterRepository returns the SQLite-backed poster cache.
func NewLocalPosterRepository(db *DB, logger *logger.Logger) LocalPosterRepository {
	return &localPosterRepository{
		DB:     db,
		logger: logger,
	}
}

// rowQuerier is satisfied by *sql.DB and *sql.Tx.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func storageFailure(stage error, err error) error {
	if errors.Is(err, ErrLocalStorageFailure) {
		return err
	}
	if stage == nil {
		return fmt.Errorf("%w: %w", ErrLocalStorageFailure, err)
	}
	return fmt.Errorf("%w: %w: %w", ErrLocalStorageFailure, stage, err)
}

func validatePoster(p models.Poster) error {
	if !p.PendingSync && p.ServerID == nil {
		return fmt.Errorf("%w: synced record needs a server id", ErrInvalidPoster)
	}
	if !p.Location.Valid() {
		return fmt.Errorf("%w: coordinates out of range", ErrInvalidPoster)
	}
	return nil
}

func insertPoster(ctx context.Context, q rowQuerier, p models.Poster) (int64, error) {
	var localID int64
	err := q.QueryRowContext(ctx, insertLocalPoster,
		nullableServerID(p.ServerID),
		p.Location.Lat,
		p.Location.Lng,
		p.Removed,
		p.PendingSync,
	).Scan(&localID)
	return localID, err
}

func (l *localPosterRepository) Insert(ctx context.Context, poster models.Poster) (int64, error) {
	log := logger.FromContext(ctx)

	if err := validatePoster(poster); err != nil {
		return 0, err
	}

	var localID int64
	err := l.DB.inWriteTx(ctx, func(tx *sql.Tx) error {
		var err error
		localID, err = insertPoster(ctx, tx, poster)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "localPosterRepository.Insert").
			Msg("failed to insert poster")
		return 0, storageFailure(nil, err)
	}

	log.Debug().
		Str("func", "localPosterRepository.Insert").
		Int64("local_id", localID).
		Bool("pending_sync", poster.PendingSync).
		Msg("poster stored")

	return localID, nil
}

func (l *localPosterRepository) InsertBatch(ctx context.Context, posters ...models.Poster) ([]int64, error) {
	log := logger.FromContext(ctx)

	for idx, p := range posters {
		if err := validatePoster(p); err != nil {
			return nil, fmt.Errorf("record %d: %w", idx, err)
		}
	}

	ids := make([]int64, 0, len(posters))
	err := l.DB.inWriteTx(ctx, func(tx *sql.Tx) error {
		ids = ids[:0]
		for idx, p := range posters {
			localID, err := insertPoster(ctx, tx, p)
			if err != nil {
				log.Err(err).
					Str("func", "localPosterRepository.InsertBatch").
					Int("iteration", idx+1).
					Int("total", len(posters)).
					Msg("failed to insert poster in transaction")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			ids = append(ids, localID)
		}
		return nil
	})
	if err != nil {
		return nil, storageFailure(nil, err)
	}

	log.Debug().
		Str("func", "localPosterRepository.InsertBatch").
		Int("count", len(ids)).
		Msg("poster batch stored")

	return ids, nil
}

func (l *localPosterRepository) Get(ctx context.Context, localID int64) (models.Poster, error) {
	row := l.DB.QueryRowContext(ctx, getLocalPoster, localID)

	poster, err := scanPoster(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Poster{}, ErrPosterNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPosterRepository.Get").
			Int64("local_id", localID).
			Msg("failed to load poster")
		return models.Poster{}, storageFailure(ErrScanningRow, err)
	}

	return poster, nil
}

func (l *localPosterRepository) ListActive(ctx context.Context) ([]models.Poster, error) {
	return l.list(ctx, "localPosterRepository.ListActive", listActiveLocalPosters)
}

func (l *localPosterRepository) ListPending(ctx context.Context) ([]models.Poster, error) {
	return l.list(ctx, "localPosterRepository.ListPending", listPendingLocalPosters)
}

func (l *localPosterRepository) list(ctx context.Context, fn, query string) ([]models.Poster, error) {
	log := logger.FromContext(ctx)

	rows, err := l.DB.QueryContext(ctx, query)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute query")
		return nil, storageFailure(ErrExecutingQuery, err)
	}
	defer rows.Close()

	posters := make([]models.Poster, 0)
	for rows.Next() {
		poster, scanErr := scanPoster(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Msg("failed to scan poster row")
			return nil, storageFailure(ErrScanningRows, scanErr)
		}
		posters = append(posters, poster)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", fn).Msg("error occurred during rows iteration")
		return nil, storageFailure(ErrScanningRows, rowsErr)
	}

	return posters, nil
}

func (l *localPosterRepository) MarkSynced(ctx context.Context, localID, serverID int64) error {
	log := logger.FromContext(ctx)

	err := l.DB.inWriteTx(ctx, func(tx *sql.Tx) error {
		var current sql.NullInt64
		var removed bool
		err := tx.QueryRowContext(ctx, getLocalPosterServerID, localID).Scan(&current, &removed)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPosterNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		var ownerID int64
		err = tx.QueryRowContext(ctx, findLocalIDByServerID, serverID).Scan(&ownerID)
		switch {
		case errors.Is(err, sql.ErrNoRows), err == nil && ownerID == localID:
			if _, err := tx.ExecContext(ctx, markLocalPosterSynced, serverID, localID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		default:
			log.Warn().
				Str("func", "localPosterRepository.MarkSynced").
				Int64("local_id", localID).
				Int64("owner_local_id", ownerID).
				Int64("server_id", serverID).
				Msg("server id already cached, collapsing records")

			if _, err := tx.ExecContext(ctx, mergeIntoLocalPoster, removed, ownerID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			if _, err := tx.ExecContext(ctx, deleteLocalPosterByLocalID, localID); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if errors.Is(err, ErrPosterNotFound) {
		return err
	}
	if err != nil {
		log.Err(err).
			Str("func", "localPosterRepository.MarkSynced").
			Int64("local_id", localID).
			Int64("server_id", serverID).
			Msg("failed to mark poster synced")
		return storageFailure(nil, err)
	}

	return nil
}

func (l *localPosterRepository) MarkRemovedByServerID(ctx context.Context, serverID int64) (models.Location, error) {
	log := logger.FromContext(ctx)

	var location models.Location
	err := l.DB.inWriteTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, findLocalPosterByServerID, serverID).Scan(&location.Lat, &location.Lng)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPosterNotFound
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		if _, err := tx.ExecContext(ctx, markLocalPosterRemoved, serverID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if errors.Is(err, ErrPosterNotFound) {
		return models.Location{}, err
	}
	if err != nil {
		log.Err(err).
			Str("func", "localPosterRepository.MarkRemovedByServerID").
			Int64("server_id", serverID).
			Msg("failed to mark poster removed")
		return models.Location{}, storageFailure(nil, err)
	}

	return location, nil
}

func (l *localPosterRepository) PurgeByServerID(ctx context.Context, serverID int64) error {
	return l.purge(ctx, "localPosterRepository.PurgeByServerID", deleteLocalPosterByServerID, serverID)
}

func (l *localPosterRepository) PurgeByLocalID(ctx context.Context, localID int64) error {
	return l.purge(ctx, "localPosterRepository.PurgeByLocalID", deleteLocalPosterByLocalID, localID)
}

func (l *localPosterRepository) purge(ctx context.Context, fn, query string, id int64) error {
	res, err := l.DB.exec(ctx, query, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Int64("id", id).Msg("failed to delete poster")
		return storageFailure(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storageFailure(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPosterNotFound
	}

	return nil
}

func (l *localPosterRepository) PurgeTombstones(ctx context.Context) (int64, error) {
	res, err := l.DB.exec(ctx, deleteConfirmedTombstones)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPosterRepository.PurgeTombstones").
			Msg("failed to purge tombstones")
		return 0, storageFailure(ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, storageFailure(ErrExecutingStatement, err)
	}

	return affected, nil
}

func (l *localPosterRepository) ApplyRemoteDelta(ctx context.Context, deltas []models.PosterDelta) error {
	log := logger.FromContext(ctx)

	deltas = dropMalformedDeltas(ctx, deltas)
	if len(deltas) == 0 {
		return nil
	}

	err := l.DB.inWriteTx(ctx, func(tx *sql.Tx) error {
		for idx, d := range deltas {
			var err error
			if d.Removed {
				_, err = tx.ExecContext(ctx, applyRemoteRemoval, d.ServerID)
			} else {
				_, err = tx.ExecContext(ctx, upsertRemotePoster, d.ServerID, d.Location.Lat, d.Location.Lng)
			}
			if err != nil {
				log.Err(err).
					Str("func", "localPosterRepository.ApplyRemoteDelta").
					Int("iteration", idx+1).
					Int("total", len(deltas)).
					Int64("server_id", d.ServerID).
					Msg("failed to merge remote poster")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
		return nil
	})
	if err != nil {
		return storageFailure(nil, err)
	}

	log.Debug().
		Str("func", "localPosterRepository.ApplyRemoteDelta").
		Int("count", len(deltas)).
		Msg("remote delta merged")

	return nil
}

// dropMalformedDeltas filters out entries the server should never have sent.
// One bad row must not block the rest of the batch.
func dropMalformedDeltas(ctx context.Context, deltas []models.PosterDelta) []models.PosterDelta {
	valid := make([]models.PosterDelta, 0, len(deltas))
	for _, d := range deltas {
		if d.ServerID <= 0 || (!d.Removed && !d.Location.Valid()) {
			logger.FromContext(ctx).Warn().
				Str("func", "localPosterRepository.ApplyRemoteDelta").
				Int64("server_id", d.ServerID).
				Float64("lat", d.Location.Lat).
				Float64("lng", d.Location.Lng).
				Bool("removed", d.Removed).
				Msg("skipping malformed remote poster")
			continue
		}
		valid = append(valid, d)
	}
	return valid
}

func (l *localPosterRepository) ResetAll(ctx context.Context) error {
	err := l.DB.inWriteTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deleteAllLocalPosters); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err := tx.ExecContext(ctx, resetCheckpoint, checkpointKey); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localPosterRepository.ResetAll").
			Msg("failed to reset local cache")
		return storageFailure(nil, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPoster(row rowScanner) (models.Poster, error) {
	var p models.Poster
	var serverID sql.NullInt64

	if err := row.Scan(&p.LocalID, &serverID, &p.Location.Lat, &p.Location.Lng, &p.Removed, &p.PendingSync); err != nil {
		return models.Poster{}, err
	}
	if serverID.Valid {
		p.ServerID = models.Int64Ptr(serverID.Int64)
	}

	return p, nil
}

func nullableServerID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
