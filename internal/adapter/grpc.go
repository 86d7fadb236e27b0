package adapter

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/rpc"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// grpcPosterService talks to poster.PosterApp over one long-lived
// ClientConn.
type grpcPosterService struct {
	conn   *grpc.ClientConn
	client *rpc.PosterAppClient

	logger *logger.Logger
}

// NewGRPCPosterService dials cfg.GRPCAddress lazily and returns a gRPC
// implementation of [PosterService]. The connection is plaintext.
func NewGRPCPosterService(cfg config.ClientAdapter, logger *logger.Logger, opts ...grpc.DialOption) (PosterService, error) {
	if cfg.GRPCAddress == "" {
		return nil, fmt.Errorf("invalid adapter grpc address: empty address")
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype(rpc.CodecName)),
	}, opts...)

	conn, err := grpc.NewClient(cfg.GRPCAddress, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter grpc address: %w", err)
	}

	return newGRPCPosterService(conn, logger), nil
}

func newGRPCPosterService(conn *grpc.ClientConn, logger *logger.Logger) *grpcPosterService {
	return &grpcPosterService{
		conn:   conn,
		client: rpc.NewPosterAppClient(conn),
		logger: logger,
	}
}

// Register implements [PosterService].
func (g *grpcPosterService) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	out, err := g.client.RegisterAccount(ctx, &req)
	if err != nil {
		return 0, mapGRPCError("register", err)
	}
	return out.UserID, nil
}

// Login implements [PosterService].
func (g *grpcPosterService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	out, err := g.client.LoginAccount(ctx, &models.LoginRequest{Login: credentials.Login, Password: credentials.Password})
	if err != nil {
		return models.Session{}, mapGRPCError("login", err)
	}

	session := out.Session()
	if !session.Valid() {
		return models.Session{}, fmt.Errorf("%w: login response without auth key", ErrInvalidResponse)
	}
	return session, nil
}

// Place implements [PosterService].
func (g *grpcPosterService) Place(ctx context.Context, session models.Session, location models.Location) (int64, error) {
	if !session.Valid() {
		return 0, ErrInvalidSession
	}

	out, err := g.client.PlacePoster(withAuth(ctx, session), &models.PosterRequest{
		UserID:   session.UserID,
		PartyID:  session.PartyID,
		Location: location,
	})
	if err != nil {
		return 0, mapGRPCError("place", err)
	}
	if out.PosterID <= 0 {
		return 0, fmt.Errorf("%w: place response without poster id", ErrInvalidResponse)
	}
	return out.PosterID, nil
}

// Remove implements [PosterService].
func (g *grpcPosterService) Remove(ctx context.Context, session models.Session, location models.Location) (int64, error) {
	if !session.Valid() {
		return 0, ErrInvalidSession
	}

	out, err := g.client.RemovePoster(withAuth(ctx, session), &models.PosterRequest{
		UserID:   session.UserID,
		PartyID:  session.PartyID,
		Location: location,
	})
	if err != nil {
		return 0, mapGRPCError("remove", err)
	}
	if out.PosterID <= 0 {
		return 0, fmt.Errorf("%w: remove response without poster id", ErrInvalidResponse)
	}
	return out.PosterID, nil
}

// FetchUpdatesSince implements [PosterService].
func (g *grpcPosterService) FetchUpdatesSince(ctx context.Context, session models.Session, since time.Time) ([]models.PosterDelta, error) {
	if !session.Valid() {
		return nil, ErrInvalidSession
	}

	out, err := g.client.RetrieveUpdates(withAuth(ctx, session), &models.UpdatesRequest{
		UserID:  session.UserID,
		PartyID: session.PartyID,
		Since:   toMillis(since),
	})
	if err != nil {
		return nil, mapGRPCError("retrieve updates", err)
	}

	if out.Posters == nil {
		return []models.PosterDelta{}, nil
	}
	return out.Posters, nil
}

// Close implements [PosterService].
func (g *grpcPosterService) Close() error {
	return g.conn.Close()
}

func withAuth(ctx context.Context, session models.Session) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		rpc.AuthMetadataKey, "Bearer "+session.AuthKey,
		rpc.RequestIDMetadataKey, utils.NewTraceID(),
	)
}
