package models

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Login    string `json:"login"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// RegisterResponse returns the id of the created account.
type RegisterResponse struct {
	UserID int64 `json:"user_id"`
}

// LoginRequest exchanges credentials for an auth key.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// LoginResponse carries the issued session.
type LoginResponse struct {
	AuthKey   string `json:"auth_key"`
	UserID    int64  `json:"user_id"`
	PartyID   int64  `json:"party_id"`
	PartyName string `json:"party_name"`
}

// Session converts the response into a client session.
func (r LoginResponse) Session() Session {
	return Session{AuthKey: r.AuthKey, UserID: r.UserID, PartyID: r.PartyID, PartyName: r.PartyName}
}

// PosterRequest places or removes a poster at Location on behalf of
// UserID within PartyID.
type PosterRequest struct {
	UserID   int64    `json:"user_id"`
	PartyID  int64    `json:"party_id"`
	Location Location `json:"location"`
}

// PosterResponse returns the affected poster id.
type PosterResponse struct {
	PosterID int64 `json:"poster_id"`
}

// UpdatesRequest asks for every party poster changed after Since.
type UpdatesRequest struct {
	UserID  int64 `json:"user_id"`
	PartyID int64 `json:"party_id"`
	// Since is a Unix timestamp in milliseconds.
	Since int64 `json:"since"`
}

// UpdatesResponse lists the changed posters.
type UpdatesResponse struct {
	Posters []PosterDelta `json:"posters"`
	// Length is the number of entries in Posters.
	Length int `json:"length"`
}

// ErrorResponse is the JSON error body of the HTTP API.
type ErrorResponse struct {
	Error string `json:"error"`
}
