package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// posterRepository is the PostgreSQL-backed implementation of
// [PosterRepository]. Removal is a soft delete so that clients pulling
// updates learn about it.
type posterRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewPosterRepository constructs a [PosterRepository].
func NewPosterRepository(db *DB, logger *logger.Logger) PosterRepository {
	logger.Debug().Msg("creating poster repository")
	return &posterRepository{
		db:     db,
		logger: logger,
	}
}

func (r *posterRepository) CreatePoster(ctx context.Context, poster models.ServerPoster) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreatePosterQuery(poster)
	if err != nil {
		return 0, err
	}

	var posterID int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&posterID); err != nil {
		log.Err(err).
			Str("func", "*posterRepository.CreatePoster").
			Int64("party_id", poster.PartyID).
			Int64("user_id", poster.UserID).
			Msg("error inserting poster")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "*posterRepository.CreatePoster").
		Int64("poster_id", posterID).
		Int64("party_id", poster.PartyID).
		Msg("poster placed")

	return posterID, nil
}

// RemoveNearest locks the candidates inside the bounding box of the radius,
// picks the closest one by great-circle distance and soft-removes it, all
// in one transaction.
func (r *posterRepository) RemoveNearest(ctx context.Context, partyID, userID int64, location models.Location, radiusMeters float64) (int64, error) {
	log := logger.FromContext(ctx)

	box := utils.BoundingBoxAround(location, radiusMeters)
	selectQuery, selectArgs, err := buildNearbyPostersQuery(partyID, box)
	if err != nil {
		return 0, err
	}

	var removedID int64
	err = r.db.inWriteTx(ctx, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, selectQuery, selectArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		defer rows.Close()

		var ids []int64
		var locations []models.Location
		for rows.Next() {
			var id int64
			var loc models.Location
			if err := rows.Scan(&id, &loc.Lat, &loc.Lng); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			ids = append(ids, id)
			locations = append(locations, loc)
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rows.Close()

		idx := utils.Nearest(location, locations, radiusMeters)
		if idx < 0 {
			return ErrPosterNotFound
		}

		updateQuery, updateArgs, err := buildMarkPosterRemovedQuery(ids[idx], userID)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, updateQuery, updateArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		removedID = ids[idx]
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "*posterRepository.RemoveNearest").
			Int64("party_id", partyID).
			Float64("lat", location.Lat).
			Float64("lng", location.Lng).
			Msg("poster was not removed")
		return 0, err
	}

	log.Info().
		Str("func", "*posterRepository.RemoveNearest").
		Int64("poster_id", removedID).
		Int64("removed_by", userID).
		Msg("poster removed")

	return removedID, nil
}

func (r *posterRepository) UpdatedSince(ctx context.Context, partyID int64, since time.Time) ([]models.ServerPoster, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatedSinceQuery(partyID, since)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*posterRepository.UpdatedSince").Int64("party_id", partyID).Msg("error querying updates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posters := make([]models.ServerPoster, 0)
	for rows.Next() {
		var p models.ServerPoster
		var removedAt sql.NullTime
		var removedBy sql.NullInt64
		if err := rows.Scan(
			&p.PosterID,
			&p.PartyID,
			&p.UserID,
			&p.Location.Lat,
			&p.Location.Lng,
			&p.CreatedAt,
			&p.UpdatedAt,
			&p.Removed,
			&removedAt,
			&removedBy,
		); err != nil {
			log.Err(err).Str("func", "*posterRepository.UpdatedSince").Msg("failed to scan poster row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if removedAt.Valid {
			p.RemovedAt = &removedAt.Time
		}
		if removedBy.Valid {
			p.RemovedBy = models.Int64Ptr(removedBy.Int64)
		}
		posters = append(posters, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	log.Debug().
		Str("func", "*posterRepository.UpdatedSince").
		Int64("party_id", partyID).
		Time("since", since).
		Int("count", len(posters)).
		Msg("updates loaded")

	return posters, nil
}
