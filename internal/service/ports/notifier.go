package ports

import (
	"context"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

// AdminNotifier pushes noteworthy events to the office admin channel.
// Implementations must be safe to call from goroutines and must never
// block user-facing operations.
type AdminNotifier interface {
	NotifyRelocationRequested(ctx context.Context, req domain.RelocationRequest)
	NotifyRelocationCompleted(ctx context.Context, req domain.RelocationRequest, destSeatID string)
	NotifyCommitConflicts(ctx context.Context, actorName string, conflicts []domain.CommitConflict)
}
