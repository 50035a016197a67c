package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/CarlosDimare/soccerwiki"
	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ soccerwiki.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements soccerwiki.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateSnapshot stores a new page snapshot.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *soccerwiki.Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	snap.FetchedAt = time.Now().UTC()
	snap.ContentHash = hashContent(snap.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, kind, source_url, name, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, snap.ID, string(snap.Kind), snap.SourceURL, snap.Name, snap.Content, snap.ContentHash,
		snap.FetchedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*soccerwiki.Snapshot, error) {
	var snap soccerwiki.Snapshot
	var kind, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, kind, source_url, name, content, content_hash, fetched_at
		FROM snapshots
		WHERE id = ?
	`, id).Scan(&snap.ID, &kind, &snap.SourceURL, &snap.Name, &snap.Content,
		&snap.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, soccerwiki.Errorf(soccerwiki.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}

	snap.Kind = soccerwiki.PageKind(kind)
	snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter soccerwiki.SnapshotFilter) ([]*soccerwiki.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, kind, source_url, name, content, content_hash, fetched_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Kind != nil {
		query.WriteString(" AND kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*soccerwiki.Snapshot
	for rows.Next() {
		var snap soccerwiki.Snapshot
		var kind, fetchedAt string

		if err := rows.Scan(&snap.ID, &kind, &snap.SourceURL, &snap.Name, &snap.Content,
			&snap.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		snap.Kind = soccerwiki.PageKind(kind)
		snap.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return soccerwiki.Errorf(soccerwiki.ENOTFOUND, "snapshot not found")
	}

	return nil
}
