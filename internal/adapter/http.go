package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	registerPath = "/api/auth/register"
	loginPath    = "/api/auth/login"
	postersPath  = "/api/posters/"
	updatesPath  = "/api/posters/updates"
)

type httpPosterService struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPosterService constructs an HTTP/REST implementation of
// [PosterService]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPPosterService(cfg config.ClientAdapter, logger *logger.Logger) (PosterService, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpPosterService{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Register implements [PosterService]. POST /api/auth/register.
func (h *httpPosterService) Register(ctx context.Context, req models.RegisterRequest) (int64, error) {
	var out models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&out).
		Post(registerPath)
	if err != nil {
		return 0, mapTransportError("register request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return out.UserID, nil
}

// Login implements [PosterService]. POST /api/auth/login. The session is
// read from the JSON body.
func (h *httpPosterService) Login(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	var out models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Login: credentials.Login, Password: credentials.Password}).
		SetResult(&out).
		Post(loginPath)
	if err != nil {
		return models.Session{}, mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	session := out.Session()
	if !session.Valid() {
		return models.Session{}, fmt.Errorf("%w: login response without auth key", ErrInvalidResponse)
	}

	return session, nil
}

// Place implements [PosterService]. POST /api/posters/.
func (h *httpPosterService) Place(ctx context.Context, session models.Session, location models.Location) (int64, error) {
	return h.posterCall(ctx, session, location, "place", func(r *resty.Request) (*resty.Response, error) {
		return r.Post(postersPath)
	})
}

// Remove implements [PosterService]. DELETE /api/posters/.
func (h *httpPosterService) Remove(ctx context.Context, session models.Session, location models.Location) (int64, error) {
	return h.posterCall(ctx, session, location, "remove", func(r *resty.Request) (*resty.Response, error) {
		return r.Delete(postersPath)
	})
}

func (h *httpPosterService) posterCall(
	ctx context.Context,
	session models.Session,
	location models.Location,
	op string,
	send func(r *resty.Request) (*resty.Response, error),
) (int64, error) {
	if !session.Valid() {
		return 0, ErrInvalidSession
	}

	var out models.PosterResponse
	req := h.authedRequest(ctx, session).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PosterRequest{UserID: session.UserID, PartyID: session.PartyID, Location: location}).
		SetResult(&out)

	resp, err := send(req)
	if err != nil {
		return 0, mapTransportError(op+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	if out.PosterID <= 0 {
		return 0, fmt.Errorf("%w: %s response without poster id", ErrInvalidResponse, op)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "*httpPosterService.posterCall").
		Str("op", op).
		Int64("poster_id", out.PosterID).
		Msg("remote acknowledged poster")

	return out.PosterID, nil
}

// FetchUpdatesSince implements [PosterService].
// GET /api/posters/updates?since=<ms>&user_id=&party_id=.
func (h *httpPosterService) FetchUpdatesSince(ctx context.Context, session models.Session, since time.Time) ([]models.PosterDelta, error) {
	if !session.Valid() {
		return nil, ErrInvalidSession
	}

	var out models.UpdatesResponse
	resp, err := h.authedRequest(ctx, session).
		SetQueryParams(map[string]string{
			"since":    strconv.FormatInt(toMillis(since), 10),
			"user_id":  strconv.FormatInt(session.UserID, 10),
			"party_id": strconv.FormatInt(session.PartyID, 10),
		}).
		SetResult(&out).
		Get(updatesPath)
	if err != nil {
		return nil, mapTransportError("updates request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if out.Posters == nil {
		out.Posters = []models.PosterDelta{}
	}
	return out.Posters, nil
}

// Close implements [PosterService]. Idle keep-alive connections are dropped.
func (h *httpPosterService) Close() error {
	h.client.GetClient().CloseIdleConnections()
	return nil
}

func (h *httpPosterService) authedRequest(ctx context.Context, session models.Session) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetAuthScheme("Bearer").
		SetAuthToken(session.AuthKey)
}

// toMillis encodes the zero time as 0 ("from the beginning").
func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMilli()
}
