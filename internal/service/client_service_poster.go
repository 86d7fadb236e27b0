package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/observability"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/internal/validators"
	"github.com/MKhiriev/go-poster-keeper/models"
)

const posterComponent = "posters"

type clientPosterService struct {
	posters   store.LocalPosterRepository
	sync      ClientSyncService
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientPosterService(posters store.LocalPosterRepository, sync ClientSyncService, logger *logger.Logger) ClientPosterService {
	return &clientPosterService{
		posters:   posters,
		sync:      sync,
		validator: validators.NewPosterValidator(),
		logger:    logger.WithComponent(posterComponent),
	}
}

func (s *clientPosterService) Place(ctx context.Context, session models.Session, location models.Location) (models.Poster, models.SyncReport, error) {
	ctx, span := observability.StartServiceSpan(ctx, posterComponent, "Place")
	defer span.End()

	if err := s.validator.Validate(ctx, location); err != nil {
		observability.RecordError(span, err)
		return models.Poster{}, models.SyncReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	poster := models.Poster{Location: location, PendingSync: true}
	localID, err := s.posters.Insert(ctx, poster)
	if err != nil {
		observability.RecordError(span, err)
		return models.Poster{}, models.SyncReport{}, fmt.Errorf("store new poster: %w", err)
	}
	poster.LocalID = localID

	s.logger.Info().
		Str("func", "*clientPosterService.Place").
		Int64("local_id", localID).
		Float64("lat", location.Lat).
		Float64("lng", location.Lng).
		Msg("poster placed locally")

	report, err := s.syncAfterChange(ctx, session)
	if err != nil {
		observability.RecordError(span, err)
		return poster, report, err
	}

	if refreshed, err := s.posters.Get(ctx, localID); err == nil {
		poster = refreshed
	}

	return poster, report, nil
}

func (s *clientPosterService) Remove(ctx context.Context, session models.Session, location models.Location) (models.Location, models.SyncReport, error) {
	ctx, span := observability.StartServiceSpan(ctx, posterComponent, "Remove")
	defer span.End()

	if err := s.validator.Validate(ctx, location); err != nil {
		observability.RecordError(span, err)
		return models.Location{}, models.SyncReport{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	active, err := s.posters.ListActive(ctx)
	if err != nil {
		observability.RecordError(span, err)
		return models.Location{}, models.SyncReport{}, fmt.Errorf("list active posters: %w", err)
	}

	locations := make([]models.Location, len(active))
	for i, p := range active {
		locations[i] = p.Location
	}

	idx := utils.Nearest(location, locations, utils.RemovalRadiusMeters)
	if idx < 0 {
		s.logger.Info().
			Str("func", "*clientPosterService.Remove").
			Float64("lat", location.Lat).
			Float64("lng", location.Lng).
			Msg("no poster within radius")
		return models.Location{}, models.SyncReport{}, store.ErrPosterNotFound
	}
	target := active[idx]

	removedAt := target.Location
	if target.Synced() {
		removedAt, err = s.posters.MarkRemovedByServerID(ctx, *target.ServerID)
	} else {
		// never reached the remote, nothing to tell it
		err = s.posters.PurgeByLocalID(ctx, target.LocalID)
	}
	if err != nil {
		observability.RecordError(span, err)
		return models.Location{}, models.SyncReport{}, fmt.Errorf("remove poster %d: %w", target.LocalID, err)
	}

	s.logger.Info().
		Str("func", "*clientPosterService.Remove").
		Int64("local_id", target.LocalID).
		Bool("synced", target.Synced()).
		Msg("poster removed locally")

	report, err := s.syncAfterChange(ctx, session)
	observability.RecordError(span, err)

	return removedAt, report, err
}

func (s *clientPosterService) List(ctx context.Context) ([]models.Poster, error) {
	return s.posters.ListActive(ctx)
}

// syncAfterChange runs a cycle and swallows every remote failure: the local
// change is already durable and will be retried later. Only a storage
// failure is returned.
func (s *clientPosterService) syncAfterChange(ctx context.Context, session models.Session) (models.SyncReport, error) {
	report, err := s.sync.RunSyncCycle(ctx, session)
	if err == nil {
		return report, nil
	}

	if errors.Is(err, store.ErrLocalStorageFailure) {
		return report, err
	}

	s.logger.Warn().
		Err(err).
		Str("func", "*clientPosterService.syncAfterChange").
		Bool("actionable", IsActionable(err)).
		Msg("sync failed, will retry later")

	return report, nil
}
