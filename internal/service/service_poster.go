package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/observability"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// posterService keeps the authoritative poster set. Every call acts for the
// identity the auth middleware put into the context and is rejected when
// the request names somebody else.
type posterService struct {
	posterRepository store.PosterRepository
	logger           *logger.Logger
}

func NewPosterService(posterRepository store.PosterRepository, logger *logger.Logger) PosterService {
	return &posterService{
		posterRepository: posterRepository,
		logger:           logger,
	}
}

func (p *posterService) PlacePoster(ctx context.Context, request models.PosterRequest) (int64, error) {
	ctx, span := observability.StartServiceSpan(ctx, "poster", "PlacePoster")
	defer span.End()

	if err := authorize(ctx, request.UserID, request.PartyID); err != nil {
		observability.RecordError(span, err)
		return 0, err
	}

	posterID, err := p.posterRepository.CreatePoster(ctx, models.ServerPoster{
		PartyID:  request.PartyID,
		UserID:   request.UserID,
		Location: request.Location,
	})
	observability.RecordError(span, err)
	if err != nil {
		return 0, fmt.Errorf("error placing poster: %w", err)
	}

	return posterID, nil
}

func (p *posterService) RemovePoster(ctx context.Context, request models.PosterRequest) (int64, error) {
	ctx, span := observability.StartServiceSpan(ctx, "poster", "RemovePoster")
	defer span.End()

	if err := authorize(ctx, request.UserID, request.PartyID); err != nil {
		observability.RecordError(span, err)
		return 0, err
	}

	posterID, err := p.posterRepository.RemoveNearest(ctx, request.PartyID, request.UserID, request.Location, utils.RemovalRadiusMeters)
	observability.RecordError(span, err)
	if err != nil {
		return 0, fmt.Errorf("error removing poster: %w", err)
	}

	return posterID, nil
}

func (p *posterService) RetrieveUpdates(ctx context.Context, request models.UpdatesRequest) ([]models.PosterDelta, error) {
	ctx, span := observability.StartServiceSpan(ctx, "poster", "RetrieveUpdates")
	defer span.End()

	if err := authorize(ctx, request.UserID, request.PartyID); err != nil {
		observability.RecordError(span, err)
		return nil, err
	}

	posters, err := p.posterRepository.UpdatedSince(ctx, request.PartyID, time.UnixMilli(request.Since))
	observability.RecordError(span, err)
	if err != nil {
		return nil, fmt.Errorf("error retrieving updates: %w", err)
	}

	deltas := make([]models.PosterDelta, 0, len(posters))
	for _, poster := range posters {
		deltas = append(deltas, poster.Delta())
	}

	return deltas, nil
}

// authorize checks the request against the identity of the auth key.
func authorize(ctx context.Context, userID, partyID int64) error {
	log := logger.FromContext(ctx)

	ctxUserID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context")
		return ErrValidationNoUserID
	}

	ctxPartyID, ok := utils.GetPartyIDFromContext(ctx)
	if !ok || ctxUserID != userID || ctxPartyID != partyID {
		log.Warn().
			Int64("token_user_id", ctxUserID).
			Int64("request_user_id", userID).
			Int64("token_party_id", ctxPartyID).
			Int64("request_party_id", partyID).
			Msg("request acts for a different identity")
		return ErrAccessDenied
	}

	return nil
}
