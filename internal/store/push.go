package store

import (
	"context"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

// offerLatest delivers snap on a 1-buffered channel, replacing any
// undelivered older snapshot. Watchers only ever care about the newest
// state, so dropping a stale intermediate is correct.
func offerLatest(ctx context.Context, out chan domain.Snapshot, snap domain.Snapshot) {
	select {
	case out <- snap:
		return
	case <-ctx.Done():
		return
	default:
	}
	select {
	case <-out:
	default:
	}
	select {
	case out <- snap:
	default:
	}
}
