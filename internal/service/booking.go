package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/catalog"
	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/metrics"
	"github.com/mobac1989/buildots-seating/internal/service/ports"
	"github.com/mobac1989/buildots-seating/internal/week"
)

// BookingEngine mutates preference records. Every commit-style
// operation re-reads the freshest snapshot before writing: there is no
// lock between staging and commit, so stage-time state is never
// trusted.
type BookingEngine struct {
	store    ports.RecordStore
	catalog  *catalog.Catalog
	resolver *Resolver
	notifier ports.AdminNotifier
	metrics  *metrics.Metrics
	logger   logger.Logger
}

func NewBookingEngine(
	store ports.RecordStore,
	cat *catalog.Catalog,
	resolver *Resolver,
	notifier ports.AdminNotifier,
	m *metrics.Metrics,
	log logger.Logger,
) *BookingEngine {
	return &BookingEngine{
		store:    store,
		catalog:  cat,
		resolver: resolver,
		notifier: notifier,
		metrics:  m,
		logger:   log,
	}
}

// ToggleStage adds (date, seatID) to the session-local staged set, or
// removes it when the same pair is already staged. Staging a different
// seat for an already-staged date replaces it: one seat per date.
// Staging requires the seat to be free under the current snapshot with
// the session's own stage overlaid.
func (e *BookingEngine) ToggleStage(snap domain.Snapshot, staged domain.StagedBookings, date, seatID string, actor StagedView) (domain.StagedBookings, error) {
	out := make(domain.StagedBookings, len(staged)+1)
	for d, s := range staged {
		out[d] = s
	}

	if out[date] == seatID {
		delete(out, date)
		return out, nil
	}

	actor.Bookings = out
	occupant, err := e.resolver.OccupantOf(snap, date, seatID, &actor)
	if err != nil {
		return nil, err
	}
	if occupant != nil {
		return nil, domain.ErrSeatOccupied
	}

	out[date] = seatID
	return out, nil
}

// CommitStaged finalizes a multi-day staged set. Each entry is
// re-checked against the freshest snapshot; entries that lost the race
// are dropped and reported as conflicts, the survivors are merged into
// the actor's record and written back. Conflicts are an expected
// outcome, not an error.
func (e *BookingEngine) CommitStaged(ctx context.Context, actorKey, actorName string, staged domain.StagedBookings) ([]domain.CommitConflict, error) {
	if len(staged) == 0 {
		return nil, fmt.Errorf("%w: nothing staged", domain.ErrValidation)
	}

	snap, err := e.store.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("read latest snapshot: %w", err)
	}

	dates := make([]string, 0, len(staged))
	for date := range staged {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	applied := map[string]string{}
	var conflicts []domain.CommitConflict
	for _, date := range dates {
		seatID := staged[date]
		occupant, err := e.resolver.OccupantOf(snap, date, seatID, nil)
		if err != nil {
			return nil, err
		}
		if occupant != nil && occupant.Key != actorKey {
			conflicts = append(conflicts, e.conflictFor(date, seatID))
			continue
		}
		applied[date] = seatID
	}

	if len(applied) > 0 {
		rec, ok := snap[actorKey]
		if ok {
			rec = rec.Clone()
		} else {
			rec = domain.NewPreferenceRecord(actorName)
		}
		for date, seatID := range applied {
			rec.Bookings[date] = seatID
		}
		if err := e.store.Upsert(ctx, actorKey, rec); err != nil {
			e.metrics.WriteFailure()
			return nil, err
		}
		e.metrics.Booking("commit")
	}

	e.logger.Info("staged bookings committed",
		logger.String("actor", actorKey),
		logger.Int("applied", len(applied)),
		logger.Int("conflicts", len(conflicts)),
	)
	e.metrics.CommitConflicts(len(conflicts))

	if len(conflicts) > 0 {
		go e.notifier.NotifyCommitConflicts(context.WithoutCancel(ctx), actorName, conflicts)
	}

	return conflicts, nil
}

func (e *BookingEngine) conflictFor(date, seatID string) domain.CommitConflict {
	label := seatID
	if seat, ok := e.catalog.ByID(seatID); ok {
		label = seat.Label
	}
	weekday := ""
	if day, err := week.Weekday(date); err == nil {
		weekday = day.String()
	}
	return domain.CommitConflict{Date: date, Weekday: weekday, SeatLabel: label}
}

// InstantBook writes a single-day walk-up claim. The seat is
// re-validated against the freshest snapshot first, the same check
// CommitStaged performs. Owner names book into the owner's own record;
// unknown names get a fresh ephemeral record under a generated key, so
// concurrent walk-ups never collide on identity.
func (e *BookingEngine) InstantBook(ctx context.Context, date, seatID, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, ok := e.catalog.ByID(seatID); !ok {
		return "", domain.ErrSeatNotFound
	}

	snap, err := e.store.Snapshot(ctx)
	if err != nil {
		return "", fmt.Errorf("read latest snapshot: %w", err)
	}
	occupant, err := e.resolver.OccupantOf(snap, date, seatID, nil)
	if err != nil {
		return "", err
	}
	if occupant != nil {
		return "", domain.ErrSeatOccupied
	}

	var key string
	var rec domain.PreferenceRecord
	if e.catalog.IsOwner(name) {
		key = name
		if existing, ok := snap[key]; ok {
			rec = existing.Clone()
		} else {
			rec = domain.NewPreferenceRecord(name)
		}
	} else {
		key = domain.EphemeralKeyPrefix + uuid.New().String()
		rec = domain.NewPreferenceRecord(name)
	}
	rec.Bookings[date] = seatID

	if err := e.store.Upsert(ctx, key, rec); err != nil {
		e.metrics.WriteFailure()
		return "", err
	}

	e.logger.Info("instant booking",
		logger.String("key", key),
		logger.String("seat", seatID),
		logger.String("date", date),
	)
	e.metrics.Booking("instant")

	return key, nil
}

// FreeSeat vacates a seat for a date. Owners keep their record and get
// an explicit "not coming" override; catchers lose the booking, and an
// ephemeral record whose bookings empty out is deleted entirely.
func (e *BookingEngine) FreeSeat(ctx context.Context, date, seatID string) error {
	snap, err := e.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("read latest snapshot: %w", err)
	}
	occupant, err := e.resolver.OccupantOf(snap, date, seatID, nil)
	if err != nil {
		return err
	}
	if occupant == nil {
		return domain.ErrSeatNotOccupied
	}

	rec, ok := snap[occupant.Key]
	if !ok {
		return domain.ErrSeatNotOccupied
	}
	rec = rec.Clone()

	if occupant.IsOriginalOwner {
		rec.Overrides[date] = false
		if err := e.store.Upsert(ctx, occupant.Key, rec); err != nil {
			e.metrics.WriteFailure()
			return err
		}
		return nil
	}

	if rec.Bookings[date] != seatID {
		return domain.ErrSeatNotOccupied
	}
	delete(rec.Bookings, date)

	if len(rec.Bookings) == 0 && domain.IsEphemeralKey(occupant.Key) {
		if err := e.store.Delete(ctx, occupant.Key); err != nil {
			e.metrics.WriteFailure()
			return err
		}
		e.logger.Info("ephemeral record collected",
			logger.String("key", occupant.Key),
		)
		return nil
	}

	if err := e.store.Upsert(ctx, occupant.Key, rec); err != nil {
		e.metrics.WriteFailure()
		return err
	}
	return nil
}

// ToggleOwnerAttendance flips an owner's resolved attendance for a
// date. Toggling on while the seat is held by someone else refuses
// with ErrOwnerSeatHeld and a RelocationRequest: writing the override
// anyway would be invisible under booking precedence, so the conflict
// is surfaced instead of silently writing a no-op.
func (e *BookingEngine) ToggleOwnerAttendance(ctx context.Context, ownerName, date string) (bool, *domain.RelocationRequest, error) {
	seat, ok := e.catalog.ByOwner(ownerName)
	if !ok {
		return false, nil, domain.ErrOwnerNotFound
	}

	snap, err := e.store.Snapshot(ctx)
	if err != nil {
		return false, nil, fmt.Errorf("read latest snapshot: %w", err)
	}
	occupant, err := e.resolver.OccupantOf(snap, date, seat.ID, nil)
	if err != nil {
		return false, nil, err
	}

	attending := occupant != nil && occupant.IsOriginalOwner
	becoming := !attending

	if becoming && occupant != nil && occupant.Name != ownerName {
		req := &domain.RelocationRequest{
			DisplacedKey:  occupant.Key,
			DisplacedName: occupant.Name,
			Date:          date,
			SeatID:        seat.ID,
			OwnerName:     ownerName,
		}
		return false, req, domain.ErrOwnerSeatHeld
	}

	rec, ok := snap[ownerName]
	if ok {
		rec = rec.Clone()
	} else {
		rec = domain.NewPreferenceRecord(ownerName)
	}
	rec.Overrides[date] = becoming

	if err := e.store.Upsert(ctx, ownerName, rec); err != nil {
		e.metrics.WriteFailure()
		return false, nil, err
	}

	e.logger.Info("owner attendance toggled",
		logger.String("owner", ownerName),
		logger.String("date", date),
		logger.Any("coming", becoming),
	)

	return becoming, nil, nil
}

// SaveOwnerReport persists an owner's weekly report: the recurring
// fixed-day pattern plus explicit per-date overrides for next week.
// Bookings on the record are preserved untouched.
func (e *BookingEngine) SaveOwnerReport(ctx context.Context, ownerName string, fixedDays []int, overrides map[string]bool) error {
	if !e.catalog.IsOwner(ownerName) {
		return domain.ErrOwnerNotFound
	}
	for date := range overrides {
		if !week.ValidDate(date) {
			return fmt.Errorf("%w: bad override date %q", domain.ErrValidation, date)
		}
	}

	snap, err := e.store.Snapshot(ctx)
	if err != nil {
		return fmt.Errorf("read latest snapshot: %w", err)
	}

	rec, ok := snap[ownerName]
	if ok {
		rec = rec.Clone()
	} else {
		rec = domain.NewPreferenceRecord(ownerName)
	}

	rec.FixedDays = rec.FixedDays[:0]
	for _, d := range fixedDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: bad weekday %d", domain.ErrValidation, d)
		}
		rec.FixedDays = append(rec.FixedDays, time.Weekday(d))
	}
	for date, coming := range overrides {
		rec.Overrides[date] = coming
	}

	if err := e.store.Upsert(ctx, ownerName, rec); err != nil {
		e.metrics.WriteFailure()
		return err
	}

	e.logger.Info("owner report saved",
		logger.String("owner", ownerName),
		logger.Int("fixed_days", len(rec.FixedDays)),
		logger.Int("overrides", len(overrides)),
	)

	return nil
}
