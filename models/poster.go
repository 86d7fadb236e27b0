package models

import "time"

// Location is a WGS84 coordinate pair in decimal degrees.
type Location struct {
	// Lat is the latitude, -90..90.
	Lat float64 `json:"lat"`
	// Lng is the longitude, -180..180.
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinates are inside the WGS84 ranges.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

// Poster is one locally cached poster record.
//
// A record created offline has no ServerID and PendingSync set. After a
// successful flush it carries the remote identifier and PendingSync is
// cleared. Removal is a tombstone (Removed set) until the cache purges it.
type Poster struct {
	// LocalID is the stable local identity. Assigned by the store, never
	// reused and never changed.
	LocalID int64 `json:"local_id"`

	// ServerID is the identity assigned by the remote service. Nil until the
	// placement has been acknowledged.
	ServerID *int64 `json:"server_id,omitempty"`

	// Location is where the poster hangs.
	Location Location `json:"location"`

	// Removed marks a tombstone.
	Removed bool `json:"removed"`

	// PendingSync marks a local change the remote has not acknowledged yet.
	PendingSync bool `json:"pending_sync"`
}

// TableName returns the name of the database table
// associated with the Poster model.
func (p Poster) TableName() string {
	return "posters"
}

// Synced reports whether the remote knows this record.
func (p Poster) Synced() bool {
	return p.ServerID != nil
}

// PosterDelta is a single remote change returned by FetchUpdatesSince.
type PosterDelta struct {
	// ServerID is the remote identity of the poster.
	ServerID int64 `json:"poster_id"`
	// Location is the current position of the poster.
	Location Location `json:"location"`
	// Removed reports that the poster was taken down remotely.
	Removed bool `json:"removed"`
}

// ServerPoster is the authoritative record kept by the poster server.
type ServerPoster struct {
	PosterID  int64      `json:"poster_id"`
	PartyID   int64      `json:"party_id"`
	UserID    int64      `json:"user_id"`
	Location  Location   `json:"location"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Removed   bool       `json:"removed"`
	RemovedAt *time.Time `json:"removed_at,omitempty"`
	RemovedBy *int64     `json:"removed_by,omitempty"`
}

// TableName returns the name of the database table
// associated with the ServerPoster model.
func (p ServerPoster) TableName() string {
	return "posters"
}

// Delta projects the server record onto the sync wire shape.
func (p ServerPoster) Delta() PosterDelta {
	return PosterDelta{ServerID: p.PosterID, Location: p.Location, Removed: p.Removed}
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}
