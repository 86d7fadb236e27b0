// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-poster-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validPosterRequest() models.PosterRequest {
	return models.PosterRequest{
		UserID:   1,
		PartyID:  2,
		Location: models.Location{Lat: 52.5200, Lng: 13.4050},
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewPosterValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	})

	t.Run("PosterRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, validPosterRequest()))
	})

	t.Run("PosterRequest pointer", func(t *testing.T) {
		r := validPosterRequest()
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("UpdatesRequest pointer", func(t *testing.T) {
		r := models.UpdatesRequest{UserID: 1, PartyID: 2}
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("LoginRequest value", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.LoginRequest{Login: "anna", Password: "secret"}))
	})

	t.Run("RegisterRequest pointer", func(t *testing.T) {
		r := models.RegisterRequest{Login: "anna", Password: "secret"}
		require.NoError(t, v.Validate(ctx, &r))
	})

	t.Run("Location value", func(t *testing.T) {
		require.ErrorIs(t, v.Validate(ctx, models.Location{Lat: 91}), ErrInvalidLocation)
	})
}

// ---------------------------------------------------------------------------
// TestValidatePosterRequest
// ---------------------------------------------------------------------------

func TestValidatePosterRequest(t *testing.T) {
	v := NewPosterValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(r *models.PosterRequest)
		fields  []string
		wantErr error
	}{
		{name: "valid with defaults", mutate: func(r *models.PosterRequest) {}},
		{name: "zero user_id", mutate: func(r *models.PosterRequest) { r.UserID = 0 }, wantErr: ErrInvalidUserID},
		{name: "negative party_id", mutate: func(r *models.PosterRequest) { r.PartyID = -3 }, wantErr: ErrInvalidPartyID},
		{name: "latitude out of range", mutate: func(r *models.PosterRequest) { r.Location.Lat = 90.5 }, wantErr: ErrInvalidLocation},
		{name: "longitude out of range", mutate: func(r *models.PosterRequest) { r.Location.Lng = -180.01 }, wantErr: ErrInvalidLocation},
		{name: "edge coordinates", mutate: func(r *models.PosterRequest) { r.Location = models.Location{Lat: -90, Lng: 180} }},
		{
			name:   "only location checked",
			mutate: func(r *models.PosterRequest) { r.UserID = 0 },
			fields: []string{FieldLocation},
		},
		{name: "unknown field", mutate: func(r *models.PosterRequest) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validPosterRequest()
			tt.mutate(&r)

			err := v.Validate(ctx, r, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidateUpdatesRequest
// ---------------------------------------------------------------------------

func TestValidateUpdatesRequest(t *testing.T) {
	v := NewPosterValidator()
	ctx := context.Background()

	t.Run("zero since is a full pull", func(t *testing.T) {
		require.NoError(t, v.Validate(ctx, models.UpdatesRequest{UserID: 1, PartyID: 1, Since: 0}))
	})

	t.Run("negative since", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdatesRequest{UserID: 1, PartyID: 1, Since: -1})
		require.ErrorIs(t, err, ErrInvalidSince)
	})

	t.Run("missing party", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdatesRequest{UserID: 1, Since: 10})
		require.ErrorIs(t, err, ErrInvalidPartyID)
	})

	t.Run("unknown field", func(t *testing.T) {
		err := v.Validate(ctx, models.UpdatesRequest{UserID: 1, PartyID: 1}, FieldLocation)
		require.ErrorIs(t, err, ErrUnknownField)
	})
}

// ---------------------------------------------------------------------------
// TestValidateCredentials
// ---------------------------------------------------------------------------

func TestValidateCredentials(t *testing.T) {
	v := NewPosterValidator()
	ctx := context.Background()

	require.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "x"}), ErrEmptyLogin)
	require.ErrorIs(t, v.Validate(ctx, models.RegisterRequest{Login: "anna"}), ErrEmptyPassword)

	// при регистрации проверяем только логин
	require.NoError(t, v.Validate(ctx, models.RegisterRequest{Login: "anna"}, FieldLogin))
}
