package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/service/ports/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newEngine(t *testing.T) (*BookingEngine, *mocks.MockRecordStore, *mocks.MockAdminNotifier) {
	t.Helper()
	store := mocks.NewMockRecordStore(t)
	notifier := mocks.NewMockAdminNotifier(t)
	cat := testCatalog(t)
	engine := NewBookingEngine(store, cat, NewResolver(cat), notifier, nil, newTestLogger(t))
	return engine, store, notifier
}

func TestToggleStage_AddRemoveReplace(t *testing.T) {
	engine, _, _ := newEngine(t)
	actor := StagedView{Key: "session-1", Name: "Me"}

	staged, err := engine.ToggleStage(domain.Snapshot{}, nil, sunday, "1", actor)
	require.NoError(t, err)
	assert.Equal(t, domain.StagedBookings{sunday: "1"}, staged)

	// Another seat for the same date replaces the first.
	staged, err = engine.ToggleStage(domain.Snapshot{}, staged, sunday, "2", actor)
	require.NoError(t, err)
	assert.Equal(t, domain.StagedBookings{sunday: "2"}, staged)

	// Toggling the same pair again un-stages it.
	staged, err = engine.ToggleStage(domain.Snapshot{}, staged, sunday, "2", actor)
	require.NoError(t, err)
	assert.Empty(t, staged)
}

func TestToggleStage_OccupiedSeat(t *testing.T) {
	engine, _, _ := newEngine(t)
	actor := StagedView{Key: "session-1", Name: "Me"}

	snap := domain.Snapshot{
		"Yahav Sofer": ownerRecord("Yahav Sofer", time.Sunday),
	}

	_, err := engine.ToggleStage(snap, nil, sunday, "1", actor)
	assert.ErrorIs(t, err, domain.ErrSeatOccupied)
}

func TestToggleStage_DoesNotMutateInput(t *testing.T) {
	engine, _, _ := newEngine(t)
	actor := StagedView{Key: "session-1", Name: "Me"}

	in := domain.StagedBookings{sunday: "1"}
	_, err := engine.ToggleStage(domain.Snapshot{}, in, tuesday, "2", actor)
	require.NoError(t, err)
	assert.Equal(t, domain.StagedBookings{sunday: "1"}, in)
}

func TestCommitStaged_AllApplied(t *testing.T) {
	engine, store, _ := newEngine(t)

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{}, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "session-1", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)

	staged := domain.StagedBookings{sunday: "1", tuesday: "2"}
	conflicts, err := engine.CommitStaged(context.Background(), "session-1", "Me", staged)

	require.NoError(t, err)
	assert.Empty(t, conflicts)
	assert.Equal(t, "Me", written.Name)
	assert.Equal(t, "1", written.Bookings[sunday])
	assert.Equal(t, "2", written.Bookings[tuesday])
}

func TestCommitStaged_LoserDropped(t *testing.T) {
	engine, store, notifier := newEngine(t)

	// Someone else already holds seat 1 on Sunday.
	other := domain.NewPreferenceRecord("Rival")
	other.Bookings[sunday] = "1"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_rival": other}, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "session-1", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)
	notifier.EXPECT().NotifyCommitConflicts(mock.Anything, "Me", mock.Anything).Return()

	staged := domain.StagedBookings{sunday: "1", tuesday: "2"}
	conflicts, err := engine.CommitStaged(context.Background(), "session-1", "Me", staged)

	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	assert.Equal(t, sunday, conflicts[0].Date)
	assert.Equal(t, "Sunday", conflicts[0].Weekday)
	assert.Equal(t, "1", conflicts[0].SeatLabel)

	// Only the surviving day was written.
	assert.NotContains(t, written.Bookings, sunday)
	assert.Equal(t, "2", written.Bookings[tuesday])

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCommitStaged_OwnSeatIsNotAConflict(t *testing.T) {
	engine, store, _ := newEngine(t)

	mine := domain.NewPreferenceRecord("Me")
	mine.Bookings[sunday] = "1"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"session-1": mine}, nil)
	store.EXPECT().Upsert(mock.Anything, "session-1", mock.Anything).Return(nil)

	conflicts, err := engine.CommitStaged(context.Background(), "session-1", "Me", domain.StagedBookings{sunday: "1"})

	require.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestCommitStaged_EmptyStage(t *testing.T) {
	engine, _, _ := newEngine(t)

	_, err := engine.CommitStaged(context.Background(), "session-1", "Me", nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommitStaged_AllConflictsSkipsWrite(t *testing.T) {
	engine, store, notifier := newEngine(t)

	other := domain.NewPreferenceRecord("Rival")
	other.Bookings[sunday] = "1"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_rival": other}, nil)
	notifier.EXPECT().NotifyCommitConflicts(mock.Anything, "Me", mock.Anything).Return()

	conflicts, err := engine.CommitStaged(context.Background(), "session-1", "Me", domain.StagedBookings{sunday: "1"})

	require.NoError(t, err)
	assert.Len(t, conflicts, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestInstantBook_UnknownNameGetsEphemeralKey(t *testing.T) {
	engine, store, _ := newEngine(t)

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{}, nil)

	var writtenKey string
	store.EXPECT().Upsert(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, key string, _ domain.PreferenceRecord) {
			writtenKey = key
		}).
		Return(nil)

	key, err := engine.InstantBook(context.Background(), sunday, "1", "Visitor")

	require.NoError(t, err)
	assert.Equal(t, writtenKey, key)
	assert.True(t, domain.IsEphemeralKey(key))
}

func TestInstantBook_OwnerNameBooksIntoOwnRecord(t *testing.T) {
	engine, store, _ := newEngine(t)

	existing := ownerRecord("Bar Ziony", time.Monday)
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"Bar Ziony": existing}, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "Bar Ziony", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)

	key, err := engine.InstantBook(context.Background(), sunday, "1", "Bar Ziony")

	require.NoError(t, err)
	assert.Equal(t, "Bar Ziony", key)
	assert.Equal(t, "1", written.Bookings[sunday])
	assert.Equal(t, []time.Weekday{time.Monday}, written.FixedDays)
}

func TestInstantBook_OccupiedSeat(t *testing.T) {
	engine, store, _ := newEngine(t)

	snap := domain.Snapshot{"Yahav Sofer": ownerRecord("Yahav Sofer", time.Sunday)}
	store.EXPECT().Snapshot(mock.Anything).Return(snap, nil)

	_, err := engine.InstantBook(context.Background(), sunday, "1", "Visitor")
	assert.ErrorIs(t, err, domain.ErrSeatOccupied)
}

func TestInstantBook_Validation(t *testing.T) {
	engine, _, _ := newEngine(t)

	_, err := engine.InstantBook(context.Background(), sunday, "1", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = engine.InstantBook(context.Background(), sunday, "999", "Visitor")
	assert.ErrorIs(t, err, domain.ErrSeatNotFound)
}

func TestFreeSeat_OwnerGetsOverride(t *testing.T) {
	engine, store, _ := newEngine(t)

	snap := domain.Snapshot{"Yahav Sofer": ownerRecord("Yahav Sofer", time.Sunday)}
	store.EXPECT().Snapshot(mock.Anything).Return(snap, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "Yahav Sofer", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)

	err := engine.FreeSeat(context.Background(), sunday, "1")

	require.NoError(t, err)
	coming, ok := written.Overrides[sunday]
	require.True(t, ok)
	assert.False(t, coming)
	// The fixed-day pattern survives; only this date is overridden.
	assert.Equal(t, []time.Weekday{time.Sunday}, written.FixedDays)
}

func TestFreeSeat_EmptiedEphemeralRecordDeleted(t *testing.T) {
	engine, store, _ := newEngine(t)

	catcher := domain.NewPreferenceRecord("Visitor")
	catcher.Bookings[sunday] = "1"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_x": catcher}, nil)
	store.EXPECT().Delete(mock.Anything, "booking_x").Return(nil)

	err := engine.FreeSeat(context.Background(), sunday, "1")
	require.NoError(t, err)
}

func TestFreeSeat_MultiDayCatcherKeepsRecord(t *testing.T) {
	engine, store, _ := newEngine(t)

	catcher := domain.NewPreferenceRecord("Visitor")
	catcher.Bookings[sunday] = "1"
	catcher.Bookings[tuesday] = "1"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_x": catcher}, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "booking_x", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)

	err := engine.FreeSeat(context.Background(), sunday, "1")

	require.NoError(t, err)
	assert.NotContains(t, written.Bookings, sunday)
	assert.Equal(t, "1", written.Bookings[tuesday])
}

func TestFreeSeat_EmptySeat(t *testing.T) {
	engine, store, _ := newEngine(t)

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{}, nil)

	err := engine.FreeSeat(context.Background(), sunday, "1")
	assert.ErrorIs(t, err, domain.ErrSeatNotOccupied)
}

func TestToggleOwnerAttendance_On(t *testing.T) {
	engine, store, _ := newEngine(t)

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{}, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "Yahav Sofer", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)

	coming, reloc, err := engine.ToggleOwnerAttendance(context.Background(), "Yahav Sofer", sunday)

	require.NoError(t, err)
	assert.True(t, coming)
	assert.Nil(t, reloc)
	assert.True(t, written.Overrides[sunday])
}

func TestToggleOwnerAttendance_Off(t *testing.T) {
	engine, store, _ := newEngine(t)

	snap := domain.Snapshot{"Yahav Sofer": ownerRecord("Yahav Sofer", time.Sunday)}
	store.EXPECT().Snapshot(mock.Anything).Return(snap, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "Yahav Sofer", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)

	coming, reloc, err := engine.ToggleOwnerAttendance(context.Background(), "Yahav Sofer", sunday)

	require.NoError(t, err)
	assert.False(t, coming)
	assert.Nil(t, reloc)
	v, ok := written.Overrides[sunday]
	require.True(t, ok)
	assert.False(t, v)
}

func TestToggleOwnerAttendance_SeatHeldByCatcher(t *testing.T) {
	engine, store, _ := newEngine(t)

	catcher := domain.NewPreferenceRecord("Visitor")
	catcher.Bookings[sunday] = "1"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_x": catcher}, nil)

	_, reloc, err := engine.ToggleOwnerAttendance(context.Background(), "Yahav Sofer", sunday)

	assert.ErrorIs(t, err, domain.ErrOwnerSeatHeld)
	require.NotNil(t, reloc)
	assert.Equal(t, "booking_x", reloc.DisplacedKey)
	assert.Equal(t, "Visitor", reloc.DisplacedName)
	assert.Equal(t, "1", reloc.SeatID)
	assert.Equal(t, "Yahav Sofer", reloc.OwnerName)
	assert.Equal(t, sunday, reloc.Date)
}

func TestToggleOwnerAttendance_UnknownOwner(t *testing.T) {
	engine, _, _ := newEngine(t)

	_, _, err := engine.ToggleOwnerAttendance(context.Background(), "Nobody", sunday)
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestSaveOwnerReport(t *testing.T) {
	engine, store, _ := newEngine(t)

	existing := domain.NewPreferenceRecord("Yahav Sofer")
	existing.Bookings["2025-06-10"] = "5"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"Yahav Sofer": existing}, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "Yahav Sofer", mock.Anything).
		Run(func(_ context.Context, _ string, rec domain.PreferenceRecord) {
			written = rec
		}).
		Return(nil)

	err := engine.SaveOwnerReport(context.Background(), "Yahav Sofer",
		[]int{0, 2}, map[string]bool{"2025-06-08": false})

	require.NoError(t, err)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Tuesday}, written.FixedDays)
	v, ok := written.Overrides["2025-06-08"]
	require.True(t, ok)
	assert.False(t, v)
	// Bookings survive a report rewrite.
	assert.Equal(t, "5", written.Bookings["2025-06-10"])
}

func TestSaveOwnerReport_Validation(t *testing.T) {
	engine, store, _ := newEngine(t)

	err := engine.SaveOwnerReport(context.Background(), "Nobody", nil, nil)
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)

	err = engine.SaveOwnerReport(context.Background(), "Yahav Sofer", nil, map[string]bool{"junk": true})
	assert.ErrorIs(t, err, domain.ErrValidation)

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{}, nil)
	err = engine.SaveOwnerReport(context.Background(), "Yahav Sofer", []int{9}, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCommitStaged_StoreErrorPropagates(t *testing.T) {
	engine, store, _ := newEngine(t)

	boom := errors.New("connection refused")
	store.EXPECT().Snapshot(mock.Anything).Return(nil, boom)

	_, err := engine.CommitStaged(context.Background(), "session-1", "Me", domain.StagedBookings{sunday: "1"})
	assert.ErrorIs(t, err, boom)
}
