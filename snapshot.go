package soccerwiki

import (
	"context"
	"time"
)

// Snapshot records one completed scrape: the projected JSON form of the
// record plus enough metadata to find it again. Snapshots live outside
// the extraction core, so each extraction call stays stateless.
type Snapshot struct {
	ID          string    `json:"id"`
	Kind        PageKind  `json:"kind"`
	SourceURL   string    `json:"sourceUrl"`
	Name        string    `json:"name"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Kind == KindUnknown {
		return Errorf(EINVALID, "snapshot kind required")
	}
	if s.SourceURL == "" {
		return Errorf(EINVALID, "snapshot source URL required")
	}
	return nil
}

// SnapshotService represents a service for persisting scrape snapshots.
type SnapshotService interface {
	// CreateSnapshot stores a new snapshot.
	CreateSnapshot(ctx context.Context, snap *Snapshot) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if the snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter, newest first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if the snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID        *string   `json:"id"`
	Kind      *PageKind `json:"kind"`
	SourceURL *string   `json:"sourceUrl"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
