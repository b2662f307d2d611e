package ports

import (
	"context"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

// RecordStore is the preference store boundary. The store offers
// single-document last-writer-wins upserts and deletes with no
// cross-document atomicity; Watch pushes the full snapshot on every
// observed change.
type RecordStore interface {
	Snapshot(ctx context.Context) (domain.Snapshot, error)
	Upsert(ctx context.Context, key string, rec domain.PreferenceRecord) error
	Delete(ctx context.Context, key string) error
	Watch(ctx context.Context) (<-chan domain.Snapshot, error)
}
