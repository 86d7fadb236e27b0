package validators

import (
	"context"

	"github.com/MKhiriev/go-poster-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUserID targets the acting user of a request.
	FieldUserID = "user_id"

	// FieldPartyID targets the party scope of a request.
	FieldPartyID = "party_id"

	// FieldLocation targets the WGS84 coordinates of a poster request.
	FieldLocation = "location"

	// FieldSince targets the millisecond watermark of an updates request.
	FieldSince = "since"

	// FieldLogin targets the account login.
	FieldLogin = "login"

	// FieldPassword targets the plaintext account password.
	FieldPassword = "password"
)

// PosterValidator checks poster and account requests before they reach
// the storage layer.
type PosterValidator struct {
}

func NewPosterValidator() Validator {
	return &PosterValidator{}
}

func (v *PosterValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PosterRequest:
		return v.validatePosterRequest(ctx, value, fields...)
	case *models.PosterRequest:
		return v.validatePosterRequest(ctx, *value, fields...)

	case models.UpdatesRequest:
		return v.validateUpdatesRequest(ctx, value, fields...)
	case *models.UpdatesRequest:
		return v.validateUpdatesRequest(ctx, *value, fields...)

	case models.RegisterRequest:
		return validateCredentials(value.Login, value.Password, fields...)
	case *models.RegisterRequest:
		return validateCredentials(value.Login, value.Password, fields...)

	case models.LoginRequest:
		return validateCredentials(value.Login, value.Password, fields...)
	case *models.LoginRequest:
		return validateCredentials(value.Login, value.Password, fields...)

	case models.Location:
		return validateLocation(value)
	case *models.Location:
		return validateLocation(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *PosterValidator) validatePosterRequest(ctx context.Context, request models.PosterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPartyID, FieldLocation}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPartyID:
			if request.PartyID <= 0 {
				return ErrInvalidPartyID
			}
		case FieldLocation:
			if err := validateLocation(request.Location); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PosterValidator) validateUpdatesRequest(ctx context.Context, request models.UpdatesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldPartyID, FieldSince}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldPartyID:
			if request.PartyID <= 0 {
				return ErrInvalidPartyID
			}
		case FieldSince:
			if request.Since < 0 {
				return ErrInvalidSince
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateCredentials(login, password string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if login == "" {
				return ErrEmptyLogin
			}
		case FieldPassword:
			if password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateLocation rejects coordinates outside the WGS84 ranges.
func validateLocation(location models.Location) error {
	if !location.Valid() {
		return ErrInvalidLocation
	}
	return nil
}
