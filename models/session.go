package models

// Session is the authenticated identity the client passes to every remote
// call. It replaces any process-wide "current user" state.
type Session struct {
	// AuthKey is the bearer credential issued at login.
	AuthKey string `json:"auth_key"`
	// UserID identifies the account.
	UserID int64 `json:"user_id"`
	// PartyID scopes the poster set the user sees.
	PartyID int64 `json:"party_id"`
	// PartyName is informational.
	PartyName string `json:"party_name"`
}

// Valid reports whether the session can be used for remote calls.
func (s Session) Valid() bool {
	return s.AuthKey != "" && s.UserID > 0 && s.PartyID > 0
}

// Credentials are the login inputs.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}
