package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// sessionRepository keeps at most one session row.
type sessionRepository struct {
	db *DB
}

// NewSessionRepository returns the SQLite-backed session store.
func NewSessionRepository(db *DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	_, err := s.db.exec(ctx, saveSession, session.AuthKey, session.UserID, session.PartyID, session.PartyName)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.Save").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return storageFailure(ErrExecutingStatement, err)
	}

	return nil
}

func (s *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := s.db.QueryRowContext(ctx, getSession).
		Scan(&session.AuthKey, &session.UserID, &session.PartyID, &session.PartyName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.Get").Msg("failed to load session")
		return models.Session{}, storageFailure(ErrScanningRow, err)
	}

	return session, nil
}

func (s *sessionRepository) Clear(ctx context.Context) error {
	if _, err := s.db.exec(ctx, clearSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.Clear").Msg("failed to clear session")
		return storageFailure(ErrExecutingStatement, err)
	}

	return nil
}
