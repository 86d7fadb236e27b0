package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-poster-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator decides whether a failed database operation may
// succeed when attempted again.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository stores server accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// PosterRepository stores the authoritative poster set.
type PosterRepository interface {
	// CreatePoster inserts a poster and returns its id.
	CreatePoster(ctx context.Context, poster models.ServerPoster) (int64, error)
	// RemoveNearest soft-removes the closest non-removed poster of partyID
	// within radiusMeters of location and returns its id.
	RemoveNearest(ctx context.Context, partyID, userID int64, location models.Location, radiusMeters float64) (int64, error)
	// UpdatedSince lists posters of partyID modified strictly after since.
	UpdatedSince(ctx context.Context, partyID int64, since time.Time) ([]models.ServerPoster, error)
}
