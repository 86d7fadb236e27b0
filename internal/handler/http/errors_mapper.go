package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-poster-keeper/internal/app"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/service"
	"github.com/MKhiriev/go-poster-keeper/internal/store"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/internal/validators"
)

type errorReply struct {
	target  error
	status  int
	message string
}

// errorReplies is matched in order; the more specific validation errors come
// before ErrInvalidDataProvided which wraps them.
var errorReplies = []errorReply{
	{validators.ErrInvalidLocation, http.StatusBadRequest, app.MsgInvalidLocation},
	{validators.ErrInvalidSince, http.StatusBadRequest, app.MsgInvalidSince},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrValidationNoUserID, http.StatusUnauthorized, app.MsgNoUserIDProvided},
	{service.ErrAccessDenied, http.StatusForbidden, app.MsgAccessDenied},

	{store.ErrPosterNotFound, http.StatusNotFound, app.MsgPosterNotFound},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
}

// replyFromError returns the status and the public message for err.
// Unknown errors, including every store.ErrExecuting*/ErrScanning* failure,
// become 500 without leaking details.
func replyFromError(err error) (int, string) {
	for _, reply := range errorReplies {
		if errors.Is(err, reply.target) {
			return reply.status, reply.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeServiceError logs err and writes the mapped JSON error body.
func writeServiceError(w http.ResponseWriter, log *logger.Logger, err error, msg string) {
	status, message := replyFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}
	utils.WriteError(w, message, status)
}
