package mock

import (
	"context"

	"github.com/CarlosDimare/soccerwiki"
)

var _ soccerwiki.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of soccerwiki.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snap *soccerwiki.Snapshot) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*soccerwiki.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter soccerwiki.SnapshotFilter) ([]*soccerwiki.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *soccerwiki.Snapshot) error {
	return s.CreateSnapshotFn(ctx, snap)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*soccerwiki.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter soccerwiki.SnapshotFilter) ([]*soccerwiki.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
