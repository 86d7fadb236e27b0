package models

import "time"

// DefaultPartyID is the party assigned to freshly registered accounts.
const DefaultPartyID int64 = 1

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the unique user login identifier (an email address in
	// practice).
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password carries the plaintext password on input and the bcrypt hash
	// once loaded from storage. Never serialized.
	Password string `json:"password,omitempty"`

	// PartyID is the party the user campaigns for.
	PartyID int64 `json:"party_id"`

	// PartyName is the display name of the party.
	PartyName string `json:"party_name,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Party groups users whose posters are shared.
type Party struct {
	PartyID int64  `json:"party_id"`
	Name    string `json:"name"`
}

// TableName returns the name of the database table holding parties.
func (p Party) TableName() string {
	return "parties"
}
