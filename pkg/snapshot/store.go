package snapshot

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Snapshot is a persisted rendering of a committed host tree. The HTML
// form is what a freshly connected live-preview client receives before
// patch frames start flowing; Seq is the sequence number of the last
// frame folded into it.
type Snapshot struct {
	ID        string
	Seq       uint64
	HTML      string
	CreatedAt time.Time
}

// NewID returns a fresh snapshot identifier.
func NewID() string {
	return uuid.NewString()
}

// Store defines the interface for snapshot persistence backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save persists a snapshot. An existing snapshot with the same ID is
	// overwritten.
	Save(ctx context.Context, snap *Snapshot) error

	// Load retrieves a snapshot by ID.
	// Returns (nil, nil) if the snapshot doesn't exist.
	Load(ctx context.Context, id string) (*Snapshot, error)

	// Delete removes a snapshot. Deleting a snapshot that doesn't exist
	// is not an error.
	Delete(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}

// ErrStoreClosed is returned when operations are attempted on a closed
// store.
type ErrStoreClosed struct{}

func (e ErrStoreClosed) Error() string {
	return "snapshot store is closed"
}
