package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidPartyID  = errors.New("invalid party ID")
	ErrInvalidLocation = errors.New("invalid location")
	ErrInvalidSince    = errors.New("invalid since timestamp")
	ErrEmptyLogin      = errors.New("login is required")
	ErrEmptyPassword   = errors.New("password is required")
)
