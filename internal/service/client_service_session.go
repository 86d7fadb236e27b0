package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poster-keeper/internal/adapter"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/validators"
	"github.com/MKhiriev/go-poster-keeper/models"
)

type clientSessionService struct {
	posters  store.LocalPosterRepository
	sessions store.SessionRepository
	remote   adapter.PosterService

	validator validators.Validator
	logger    *logger.Logger
}

func NewClientSessionService(storages *store.ClientStorages, remote adapter.PosterService, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		posters:   storages.Posters,
		sessions:  storages.Session,
		remote:    remote,
		validator: validators.NewPosterValidator(),
		logger:    logger.WithComponent("session"),
	}
}

func (s *clientSessionService) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	userID, err := s.remote.Register(ctx, req)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.Register").Str("login", req.Login).Msg("registration failed")
		return 0, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAccountError(err))
	}

	return userID, nil
}

// Login starts a fresh session. The cache of whoever was signed in before
// is wiped together with the checkpoint, so the first pull is a full one.
func (s *clientSessionService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	req := models.LoginRequest{Login: credentials.Login, Password: credentials.Password}
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	session, err := s.remote.Login(ctx, credentials)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientSessionService.Login").Str("login", credentials.Login).Msg("login failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAccountError(err))
	}

	if err := s.posters.ResetAll(ctx); err != nil {
		return models.Session{}, fmt.Errorf("reset local cache: %w", err)
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("persist session: %w", err)
	}

	s.logger.Info().
		Str("func", "*clientSessionService.Login").
		Int64("user_id", session.UserID).
		Int64("party_id", session.PartyID).
		Msg("signed in")

	return session, nil
}

func (s *clientSessionService) Restore(ctx context.Context) (models.Session, error) {
	return s.sessions.Get(ctx)
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	if err := s.posters.ResetAll(ctx); err != nil {
		return fmt.Errorf("reset local cache: %w", err)
	}

	s.logger.Info().Str("func", "*clientSessionService.Logout").Msg("signed out")
	return nil
}
