// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-poster-keeper/internal/config"
	"github.com/MKhiriev/go-poster-keeper/internal/logger"
	"github.com/MKhiriev/go-poster-keeper/internal/utils"
	"github.com/MKhiriev/go-poster-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSession = models.Session{AuthKey: "auth-key", UserID: 7, PartyID: 2, PartyName: "Greens"}

// newTestAdapter создаёт httpPosterService, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) PosterService {
	t.Helper()
	a, err := NewHTTPPosterService(config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPPosterService_InvalidAddress(t *testing.T) {
	_, err := NewHTTPPosterService(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	assert.Error(t, err)

	_, err = NewHTTPPosterService(config.ClientAdapter{HTTPAddress: "http://"}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL(" localhost:8080/ ")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL("https://posters.example.org")
	require.NoError(t, err)
	assert.Equal(t, "https://posters.example.org", got)
}

// ── Register / Login ────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, registerPath, r.URL.Path)

		var req models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Login)

		writeJSON(t, w, http.StatusOK, models.RegisterResponse{UserID: 11})
	}))
	defer srv.Close()

	id, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Login: "alice", Name: "Alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.RegisterRequest{Login: "alice"})
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "login already exists")
}

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, loginPath, r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.LoginResponse{AuthKey: "auth-key", UserID: 7, PartyID: 2, PartyName: "Greens"})
	}))
	defer srv.Close()

	session, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Login: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, testSession, session)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Login: "alice", Password: "bad"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_EmptyAuthKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.LoginResponse{UserID: 7, PartyID: 2})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{Login: "alice"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

// ── Place / Remove ──────────────────────────────────────────────────────────

func TestPlace_Success(t *testing.T) {
	loc := models.Location{Lat: 52.52, Lng: 13.405}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, postersPath, r.URL.Path)
		assert.Equal(t, "Bearer auth-key", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(utils.RequestIDHeader))

		var req models.PosterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.PosterRequest{UserID: 7, PartyID: 2, Location: loc}, req)

		writeJSON(t, w, http.StatusOK, models.PosterResponse{PosterID: 101})
	}))
	defer srv.Close()

	id, err := newTestAdapter(t, srv.URL).Place(context.Background(), testSession, loc)
	require.NoError(t, err)
	assert.Equal(t, int64(101), id)
}

func TestRemove_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("no poster found within 20 meters"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Remove(context.Background(), testSession, models.Location{Lat: 1, Lng: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlace_MissingPosterID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.PosterResponse{})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Place(context.Background(), testSession, models.Location{})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestPlace_InvalidSessionSkipsNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Place(context.Background(), models.Session{}, models.Location{})
	assert.ErrorIs(t, err, ErrInvalidSession)
	assert.False(t, called)
}

// ── FetchUpdatesSince ───────────────────────────────────────────────────────

func TestFetchUpdatesSince(t *testing.T) {
	since := time.UnixMilli(1_700_000_000_123)
	deltas := []models.PosterDelta{
		{ServerID: 1, Location: models.Location{Lat: 1, Lng: 2}},
		{ServerID: 2, Removed: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, updatesPath, r.URL.Path)
		assert.Equal(t, "1700000000123", r.URL.Query().Get("since"))
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))
		assert.Equal(t, "2", r.URL.Query().Get("party_id"))

		writeJSON(t, w, http.StatusOK, models.UpdatesResponse{Posters: deltas, Length: len(deltas)})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).FetchUpdatesSince(context.Background(), testSession, since)
	require.NoError(t, err)
	assert.Equal(t, deltas, got)
}

func TestFetchUpdatesSince_ZeroSinceAndEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "0", r.URL.Query().Get("since"))
		writeJSON(t, w, http.StatusOK, models.UpdatesResponse{})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).FetchUpdatesSince(context.Background(), testSession, time.Time{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ── transport failures ──────────────────────────────────────────────────────

func TestHTTP_ServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).FetchUpdatesSince(context.Background(), testSession, time.Time{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTP_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Place(context.Background(), testSession, models.Location{})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTP_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := newTestAdapter(t, srv.URL).Place(ctx, testSession, models.Location{})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
