// Package grpc implements the poster.PosterApp gRPC transport of the poster
// server on top of the service layer.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/rpc"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// Handler is the root gRPC transport handler. It implements
// [rpc.PosterAppServer].
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

var _ rpc.PosterAppServer = (*Handler)(nil)

// NewHandler constructs a [Handler] with the provided service container and
// logger.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// RegisterAccount implements [rpc.PosterAppServer].
func (h *Handler) RegisterAccount(ctx context.Context, req *models.RegisterRequest) (*models.RegisterResponse, error) {
	log := logger.FromContext(ctx)

	user, err := h.services.AuthService.RegisterUser(ctx, models.User{
		Login:    req.Login,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return nil, statusFromError(log, err, "user registration failed")
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")
	return &models.RegisterResponse{UserID: user.UserID}, nil
}

// LoginAccount implements [rpc.PosterAppServer].
func (h *Handler) LoginAccount(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := h.services.AuthService.Login(ctx, models.User{Login: req.Login, Password: req.Password})
	if err != nil {
		return nil, statusFromError(log, err, "user login failed")
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		return nil, statusFromError(log, err, "creation of token failed")
	}

	log.Debug().Int64("user_id", user.UserID).Int64("party_id", user.PartyID).Msg("user successfully logged in")
	return &models.LoginResponse{
		AuthKey:   token.SignedString,
		UserID:    user.UserID,
		PartyID:   user.PartyID,
		PartyName: user.PartyName,
	}, nil
}

// PlacePoster implements [rpc.PosterAppServer].
func (h *Handler) PlacePoster(ctx context.Context, req *models.PosterRequest) (*models.PosterResponse, error) {
	log := logger.FromContext(ctx)

	posterID, err := h.services.PosterService.PlacePoster(ctx, *req)
	if err != nil {
		return nil, statusFromError(log, err, "placing poster failed")
	}

	log.Info().Int64("poster_id", posterID).Msg("poster placed")
	return &models.PosterResponse{PosterID: posterID}, nil
}

// RemovePoster implements [rpc.PosterAppServer].
func (h *Handler) RemovePoster(ctx context.Context, req *models.PosterRequest) (*models.PosterResponse, error) {
	log := logger.FromContext(ctx)

	posterID, err := h.services.PosterService.RemovePoster(ctx, *req)
	if err != nil {
		return nil, statusFromError(log, err, "removing poster failed")
	}

	log.Info().Int64("poster_id", posterID).Msg("poster removed")
	return &models.PosterResponse{PosterID: posterID}, nil
}

// RetrieveUpdates implements [rpc.PosterAppServer]. Zero user or party ids
// default to the identity of the auth key.
func (h *Handler) RetrieveUpdates(ctx context.Context, req *models.UpdatesRequest) (*models.UpdatesResponse, error) {
	log := logger.FromContext(ctx)

	request := *req
	if request.UserID == 0 {
		request.UserID, _ = utils.GetUserIDFromContext(ctx)
	}
	if request.PartyID == 0 {
		request.PartyID, _ = utils.GetPartyIDFromContext(ctx)
	}

	deltas, err := h.services.PosterService.RetrieveUpdates(ctx, request)
	if err != nil {
		return nil, statusFromError(log, err, "retrieving updates failed")
	}
	if deltas == nil {
		deltas = []models.PosterDelta{}
	}

	log.Debug().Int64("since", request.Since).Int("length", len(deltas)).Msg("updates retrieved")
	return &models.UpdatesResponse{Posters: deltas, Length: len(deltas)}, nil
}
