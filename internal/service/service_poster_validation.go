package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-poster-keeper/internal/validators"
	"github.com/MKhiriev/go-poster-keeper/models"
)

type PosterValidationService struct {
	inner     PosterService
	validator validators.Validator
}

func NewPosterValidationService() PosterServiceWrapper {
	return &PosterValidationService{
		validator: validators.NewPosterValidator(),
	}
}

func (v *PosterValidationService) PlacePoster(ctx context.Context, request models.PosterRequest) (int64, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.PlacePoster(ctx, request)
}

func (v *PosterValidationService) RemovePoster(ctx context.Context, request models.PosterRequest) (int64, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RemovePoster(ctx, request)
}

func (v *PosterValidationService) RetrieveUpdates(ctx context.Context, request models.UpdatesRequest) ([]models.PosterDelta, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RetrieveUpdates(ctx, request)
}

func (v *PosterValidationService) Wrap(wrapper PosterService) PosterService {
	v.inner = wrapper
	return v
}
