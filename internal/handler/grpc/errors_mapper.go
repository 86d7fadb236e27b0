package grpc

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-poster-keeper/internal/app"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/validators"
)

type errorReply struct {
	target  error
	code    codes.Code
	message string
}

// errorReplies mirrors the HTTP status table. Order matters: validation
// errors are wrapped in ErrInvalidDataProvided.
var errorReplies = []errorReply{
	{validators.ErrInvalidLocation, codes.InvalidArgument, app.MsgInvalidLocation},
	{validators.ErrInvalidSince, codes.InvalidArgument, app.MsgInvalidSince},
	{service.ErrInvalidDataProvided, codes.InvalidArgument, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, codes.Unauthenticated, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, codes.Unauthenticated, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, codes.Unauthenticated, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, codes.Unauthenticated, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrValidationNoUserID, codes.Unauthenticated, app.MsgNoUserIDProvided},
	{service.ErrAccessDenied, codes.PermissionDenied, app.MsgAccessDenied},

	{store.ErrPosterNotFound, codes.NotFound, app.MsgPosterNotFound},
	{store.ErrLoginAlreadyExists, codes.AlreadyExists, app.MsgLoginAlreadyExists},
}

func codeFromError(err error) (codes.Code, string) {
	for _, reply := range errorReplies {
		if errors.Is(err, reply.target) {
			return reply.code, reply.message
		}
	}
	return codes.Internal, app.MsgInternalServerError
}

// statusFromError logs err and converts it to a gRPC status error.
func statusFromError(log *logger.Logger, err error, msg string) error {
	code, message := codeFromError(err)
	if code == codes.Internal {
		log.Err(err).Str("code", code.String()).Msg(msg)
	} else {
		log.Warn().Err(err).Str("code", code.String()).Msg(msg)
	}
	return status.Error(code, message)
}
