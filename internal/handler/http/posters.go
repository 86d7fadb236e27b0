package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-poster-keeper/internal/app"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
)

// placePoster handles POST /api/posters/.
func (h *Handler) placePoster(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodePosterRequest(w, r, log)
	if !ok {
		return
	}

	posterID, err := h.services.PosterService.PlacePoster(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, err, "placing poster failed")
		return
	}

	log.Info().Int64("poster_id", posterID).Msg("poster placed")
	utils.WriteJSON(w, models.PosterResponse{PosterID: posterID}, http.StatusOK)
}

// removePoster handles DELETE /api/posters/. The body names a location, the
// nearest party poster within 20 meters is taken down.
func (h *Handler) removePoster(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	req, ok := decodePosterRequest(w, r, log)
	if !ok {
		return
	}

	posterID, err := h.services.PosterService.RemovePoster(r.Context(), req)
	if err != nil {
		writeServiceError(w, log, err, "removing poster failed")
		return
	}

	log.Info().Int64("poster_id", posterID).Msg("poster removed")
	utils.WriteJSON(w, models.PosterResponse{PosterID: posterID}, http.StatusOK)
}

// retrieveUpdates handles GET /api/posters/updates?since=<ms>.
// user_id and party_id default to the identity of the auth key.
func (h *Handler) retrieveUpdates(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, _ := utils.GetUserIDFromContext(ctx)
	partyID, _ := utils.GetPartyIDFromContext(ctx)
	req := models.UpdatesRequest{UserID: userID, PartyID: partyID}

	query := r.URL.Query()
	var err error
	if req.Since, err = parseInt64Param(query.Get("since"), 0); err != nil {
		log.Warn().Err(err).Str("since", query.Get("since")).Msg("bad since parameter")
		utils.WriteError(w, app.MsgInvalidSince, http.StatusBadRequest)
		return
	}
	if req.UserID, err = parseInt64Param(query.Get("user_id"), req.UserID); err != nil {
		log.Warn().Err(err).Msg("bad user_id parameter")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}
	if req.PartyID, err = parseInt64Param(query.Get("party_id"), req.PartyID); err != nil {
		log.Warn().Err(err).Msg("bad party_id parameter")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	deltas, err := h.services.PosterService.RetrieveUpdates(ctx, req)
	if err != nil {
		writeServiceError(w, log, err, "retrieving updates failed")
		return
	}
	if deltas == nil {
		deltas = []models.PosterDelta{}
	}

	log.Debug().Int64("since", req.Since).Int("length", len(deltas)).Msg("updates retrieved")
	utils.WriteJSON(w, models.UpdatesResponse{Posters: deltas, Length: len(deltas)}, http.StatusOK)
}

func decodePosterRequest(w http.ResponseWriter, r *http.Request, log *logger.Logger) (models.PosterRequest, bool) {
	var req models.PosterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return models.PosterRequest{}, false
	}
	return req, true
}

func parseInt64Param(raw string, fallback int64) (int64, error) {
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidQueryParam, err)
	}
	return v, nil
}
