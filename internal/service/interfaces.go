package service

import (
	"context"

	"github.com/MKhiriev/go-poster-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PosterService is the authoritative poster set of the server.
type PosterService interface {
	PlacePoster(ctx context.Context, request models.PosterRequest) (int64, error)
	RemovePoster(ctx context.Context, request models.PosterRequest) (int64, error)
	RetrieveUpdates(ctx context.Context, request models.UpdatesRequest) ([]models.PosterDelta, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}
