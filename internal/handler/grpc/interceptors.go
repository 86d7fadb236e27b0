package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-poster-keeper/internal/app"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/rpc"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
)

// publicMethods do not require an auth key.
var publicMethods = map[string]struct{}{
	rpc.MethodRegisterAccount: {},
	rpc.MethodLoginAccount:    {},
}

// Interceptors returns the unary interceptor chain of the poster server in
// the order it must run: trace id, access log, authentication.
func (h *Handler) Interceptors() []grpc.UnaryServerInterceptor {
	return []grpc.UnaryServerInterceptor{
		h.withTraceID,
		h.withLogging,
		h.auth,
	}
}

func (h *Handler) withTraceID(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := firstMetadataValue(ctx, rpc.RequestIDMetadataKey)
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})

	_ = grpc.SetHeader(ctx, metadata.Pairs(rpc.RequestIDMetadataKey, traceID))
	return next(l.WithContext(ctx), req)
}

func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	start := time.Now()

	resp, err := next(ctx, req)

	logger.FromContext(ctx).Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}

// auth validates the bearer auth key from the "authorization" metadata and
// stores the identity it was issued for, the gRPC twin of the HTTP auth
// middleware.
func (h *Handler) auth(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	if _, ok := publicMethods[info.FullMethod]; ok {
		return next(ctx, req)
	}

	log := logger.FromContext(ctx)

	tokenString, err := utils.ParseBearerToken(firstMetadataValue(ctx, rpc.AuthMetadataKey))
	if err != nil {
		log.Warn().Err(err).Str("method", info.FullMethod).Msg("missing or malformed auth metadata")
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		log.Warn().Err(err).Msg("error occurred during parsing token")
		if errors.Is(err, service.ErrTokenIsExpired) {
			return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpired)
		}
		return nil, status.Error(codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid)
	}

	ctx = utils.WithIdentity(ctx, token.UserID, token.PartyID)

	l := log.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Int64("user_id", token.UserID).Int64("party_id", token.PartyID)
	})

	return next(l.WithContext(ctx), req)
}

func firstMetadataValue(ctx context.Context, key string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	if v := md.Get(key); len(v) > 0 {
		return v[0]
	}
	return ""
}
