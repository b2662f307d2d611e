package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/metrics"
	"github.com/mobac1989/buildots-seating/internal/service/ports"
)

// RelocationWorkflow is the bounded state machine that moves a
// displaced occupant to a free seat so an owner can reclaim theirs.
// States: idle <-> pending. While pending, no record has been touched;
// the displaced person keeps their seat until a valid destination is
// confirmed, so abandoning the workflow mid-flight is always safe.
type RelocationWorkflow struct {
	store    ports.RecordStore
	resolver *Resolver
	notifier ports.AdminNotifier
	metrics  *metrics.Metrics
	logger   logger.Logger

	mu      sync.Mutex
	pending *domain.RelocationRequest
}

func NewRelocationWorkflow(
	store ports.RecordStore,
	resolver *Resolver,
	notifier ports.AdminNotifier,
	m *metrics.Metrics,
	log logger.Logger,
) *RelocationWorkflow {
	return &RelocationWorkflow{
		store:    store,
		resolver: resolver,
		notifier: notifier,
		metrics:  m,
		logger:   log,
	}
}

// Begin enters the pending state. One relocation at a time: the admin
// flow is single-operator by construction.
func (w *RelocationWorkflow) Begin(ctx context.Context, req domain.RelocationRequest) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending != nil {
		return domain.ErrRelocationPending
	}
	r := req
	w.pending = &r

	w.logger.Info("relocation requested",
		logger.String("displaced", req.DisplacedName),
		logger.String("owner", req.OwnerName),
		logger.String("date", req.Date),
		logger.String("seat", req.SeatID),
	)
	w.metrics.Relocation("requested")
	go w.notifier.NotifyRelocationRequested(context.WithoutCancel(ctx), req)

	return nil
}

// Pending returns a copy of the in-flight request, or nil when idle.
func (w *RelocationWorkflow) Pending() *domain.RelocationRequest {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return nil
	}
	r := *w.pending
	return &r
}

// Cancel discards the pending request with no writes.
func (w *RelocationWorkflow) Cancel() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return domain.ErrNoRelocationPending
	}
	w.pending = nil
	w.metrics.Relocation("cancelled")
	return nil
}

// ChooseDestination completes the relocation: the destination must be
// free under the latest snapshot, then the displaced occupant's
// booking and the owner's override are written as one user intent.
// The store has no cross-document atomicity, so readers may briefly
// observe one write without the other; the next snapshot resolves
// both seats correctly either way. An occupied destination keeps the
// pending state untouched.
func (w *RelocationWorkflow) ChooseDestination(ctx context.Context, destSeatID string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pending == nil {
		return domain.ErrNoRelocationPending
	}
	req := *w.pending

	// The vacating seat is never a valid destination.
	if destSeatID == req.SeatID {
		return domain.ErrInvalidRelocationTarget
	}

	snap, err := w.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("read latest snapshot: %w", err)
	}
	occupant, err := w.resolver.OccupantOf(snap, req.Date, destSeatID, nil)
	if err != nil {
		return err
	}
	// A destination already held by the displaced person is a resume
	// after a half-applied attempt, not a conflict.
	if occupant != nil && occupant.Key != req.DisplacedKey {
		return domain.ErrInvalidRelocationTarget
	}

	// No re-check that the displaced occupant still holds the original
	// seat: once the admin confirms a destination, the move lands even
	// if the seat was freed while pending.
	displaced, ok := snap[req.DisplacedKey]
	if ok {
		displaced = displaced.Clone()
	} else {
		displaced = domain.NewPreferenceRecord(req.DisplacedName)
	}
	displaced.Bookings[req.Date] = destSeatID
	if err := w.store.Upsert(ctx, req.DisplacedKey, displaced); err != nil {
		w.metrics.WriteFailure()
		return err
	}

	owner, ok := snap[req.OwnerName]
	if ok {
		owner = owner.Clone()
	} else {
		owner = domain.NewPreferenceRecord(req.OwnerName)
	}
	owner.Overrides[req.Date] = true
	if err := w.store.Upsert(ctx, req.OwnerName, owner); err != nil {
		w.metrics.WriteFailure()
		return err
	}

	w.pending = nil

	w.logger.Info("relocation completed",
		logger.String("displaced", req.DisplacedName),
		logger.String("owner", req.OwnerName),
		logger.String("date", req.Date),
		logger.String("from", req.SeatID),
		logger.String("to", destSeatID),
	)
	w.metrics.Relocation("completed")
	go w.notifier.NotifyRelocationCompleted(context.WithoutCancel(ctx), req, destSeatID)

	return nil
}
