package session

import (
	"context"
	"time"
)

// Handler is the session save-handler lifecycle contract.
// A session runtime opens the handler, reads the payload for the current
// session id, writes it back at the end of the request and periodically
// asks the handler to collect stale sessions.
//
// Implementations must be safe for concurrent use.
type Handler interface {
	// Open prepares the handler for the named session. savePath and name are
	// runtime hints and may be ignored.
	Open(ctx context.Context, savePath, name string) error

	// Close releases per-request resources.
	Close(ctx context.Context) error

	// Read returns the raw payload stored for id.
	// A missing session is not an error: the returned slice is empty.
	Read(ctx context.Context, id string) ([]byte, error)

	// Write stores data for id, replacing any previous payload.
	Write(ctx context.Context, id string, data []byte) error

	// Destroy removes the session. Removing an unknown id is not an error.
	Destroy(ctx context.Context, id string) error

	// GC removes sessions that were not written within maxLifetime and
	// returns the number of removed sessions.
	GC(ctx context.Context, maxLifetime time.Duration) (int64, error)
}
