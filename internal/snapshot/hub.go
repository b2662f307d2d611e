// Package snapshot holds the process-wide current view of the
// preference store and fans changes out to subscribers. It replaces
// the ambient mutable snapshot the naive design would share: readers
// take an explicit copy of the current state, stream consumers get an
// explicit channel.
package snapshot

import (
	"context"
	"sync"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

type Hub struct {
	mu      sync.RWMutex
	current domain.Snapshot
	subs    map[int]chan domain.Snapshot
	nextID  int
}

func NewHub() *Hub {
	return &Hub{
		current: domain.Snapshot{},
		subs:    make(map[int]chan domain.Snapshot),
	}
}

// Run consumes the store watch stream until ctx ends or the stream
// closes. Each pushed snapshot becomes the current one and is fanned
// out to all subscribers.
func (h *Hub) Run(ctx context.Context, updates <-chan domain.Snapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-updates:
			if !ok {
				return
			}
			h.set(snap)
		}
	}
}

// set updates the current snapshot and fans it out. Sends are
// non-blocking, so holding the lock through fan-out is fine and keeps
// sends from racing a concurrent unsubscribe close.
func (h *Hub) set(snap domain.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = snap
	for _, ch := range h.subs {
		// Slow subscribers keep only the newest snapshot.
		select {
		case ch <- snap:
			continue
		default:
		}
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

// Current returns the latest snapshot the hub has seen. The returned
// map must be treated as read-only.
func (h *Hub) Current() domain.Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Subscribe registers a 1-buffered update channel. The cancel func
// unregisters it and closes the channel.
func (h *Hub) Subscribe() (<-chan domain.Snapshot, func()) {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	ch := make(chan domain.Snapshot, 1)
	h.subs[id] = ch
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}
