// Package workers runs the long-lived background workers of the sync
// client until their context is cancelled.
package workers

import "context"

// Worker is a background process. Run blocks until ctx is cancelled and the
// worker has released its resources.
type Worker interface {
	Run(ctx context.Context)
}
