package models

import "time"

// RecordFailure describes one pending record that could not be flushed.
type RecordFailure struct {
	LocalID int64 `json:"local_id"`
	// Op is "place" or "remove".
	Op string `json:"op"`
	// Err is the classified error.
	Err error `json:"-"`
}

// FlushReport summarizes a push phase.
type FlushReport struct {
	// Attempted is the size of the pending snapshot.
	Attempted int `json:"attempted"`
	// Placed counts acknowledged placements.
	Placed int `json:"placed"`
	// Removed counts acknowledged removals.
	Removed int `json:"removed"`
	// Purged counts removals the remote did not know about and that were
	// dropped locally.
	Purged int `json:"purged"`
	// Failures lists records left pending for the next cycle.
	Failures []RecordFailure `json:"failures,omitempty"`
}

// Succeeded reports whether every pending record was acknowledged.
func (r FlushReport) Succeeded() bool {
	return len(r.Failures) == 0
}

// PullReport summarizes a pull phase.
type PullReport struct {
	// Since is the checkpoint the fetch started from.
	Since time.Time `json:"since"`
	// Applied is the number of merged deltas.
	Applied int `json:"applied"`
	// Checkpoint is the watermark after the pull.
	Checkpoint time.Time `json:"checkpoint"`
}

// SyncReport is the outcome of one sync cycle.
type SyncReport struct {
	Flush FlushReport `json:"flush"`
	Pull  PullReport  `json:"pull"`
	// PullErr is set when the pull phase failed; the checkpoint was not moved.
	PullErr error `json:"-"`
	// Tombstones is the number of confirmed tombstones purged after the cycle.
	Tombstones int64 `json:"tombstones"`
}
