package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/service/ports/mocks"
)

func newWorkflow(t *testing.T) (*RelocationWorkflow, *mocks.MockRecordStore, *mocks.MockAdminNotifier) {
	t.Helper()
	store := mocks.NewMockRecordStore(t)
	notifier := mocks.NewMockAdminNotifier(t)
	cat := testCatalog(t)
	w := NewRelocationWorkflow(store, NewResolver(cat), notifier, nil, newTestLogger(t))
	return w, store, notifier
}

func testRequest() domain.RelocationRequest {
	return domain.RelocationRequest{
		DisplacedKey:  "booking_x",
		DisplacedName: "Visitor",
		Date:          sunday,
		SeatID:        "1",
		OwnerName:     "Yahav Sofer",
	}
}

func TestRelocation_BeginAndPending(t *testing.T) {
	w, _, notifier := newWorkflow(t)

	notifier.EXPECT().NotifyRelocationRequested(mock.Anything, testRequest()).Return()

	require.Nil(t, w.Pending())
	require.NoError(t, w.Begin(context.Background(), testRequest()))

	pending := w.Pending()
	require.NotNil(t, pending)
	assert.Equal(t, testRequest(), *pending)

	// The copy is a snapshot; mutating it does not touch the workflow.
	pending.SeatID = "changed"
	assert.Equal(t, "1", w.Pending().SeatID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRelocation_SecondBeginRefused(t *testing.T) {
	w, _, notifier := newWorkflow(t)

	notifier.EXPECT().NotifyRelocationRequested(mock.Anything, mock.Anything).Return()

	require.NoError(t, w.Begin(context.Background(), testRequest()))
	err := w.Begin(context.Background(), testRequest())
	assert.ErrorIs(t, err, domain.ErrRelocationPending)

	time.Sleep(50 * time.Millisecond)
}

func TestRelocation_Cancel(t *testing.T) {
	w, _, notifier := newWorkflow(t)

	assert.ErrorIs(t, w.Cancel(), domain.ErrNoRelocationPending)

	notifier.EXPECT().NotifyRelocationRequested(mock.Anything, mock.Anything).Return()
	require.NoError(t, w.Begin(context.Background(), testRequest()))

	require.NoError(t, w.Cancel())
	assert.Nil(t, w.Pending())

	time.Sleep(50 * time.Millisecond)
}

func TestRelocation_ChooseDestination(t *testing.T) {
	w, store, notifier := newWorkflow(t)

	notifier.EXPECT().NotifyRelocationRequested(mock.Anything, mock.Anything).Return()
	require.NoError(t, w.Begin(context.Background(), testRequest()))

	displaced := domain.NewPreferenceRecord("Visitor")
	displaced.Bookings[sunday] = "1"
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_x": displaced}, nil)

	written := map[string]domain.PreferenceRecord{}
	store.EXPECT().Upsert(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, key string, rec domain.PreferenceRecord) {
			written[key] = rec
		}).
		Return(nil).
		Times(2)
	notifier.EXPECT().NotifyRelocationCompleted(mock.Anything, testRequest(), "2").Return()

	require.NoError(t, w.ChooseDestination(context.Background(), "2"))

	assert.Equal(t, "2", written["booking_x"].Bookings[sunday])
	assert.True(t, written["Yahav Sofer"].Overrides[sunday])
	assert.Nil(t, w.Pending())

	time.Sleep(50 * time.Millisecond)
}

func TestRelocation_OccupiedDestinationKeepsPending(t *testing.T) {
	w, store, notifier := newWorkflow(t)

	notifier.EXPECT().NotifyRelocationRequested(mock.Anything, mock.Anything).Return()
	require.NoError(t, w.Begin(context.Background(), testRequest()))

	snap := domain.Snapshot{
		"Bar Ziony": ownerRecord("Bar Ziony", time.Sunday),
	}
	store.EXPECT().Snapshot(mock.Anything).Return(snap, nil)

	err := w.ChooseDestination(context.Background(), "2")
	assert.ErrorIs(t, err, domain.ErrInvalidRelocationTarget)
	assert.NotNil(t, w.Pending())

	time.Sleep(50 * time.Millisecond)
}

func TestRelocation_CompletesAfterOriginalSeatFreed(t *testing.T) {
	w, store, notifier := newWorkflow(t)

	notifier.EXPECT().NotifyRelocationRequested(mock.Anything, mock.Anything).Return()
	require.NoError(t, w.Begin(context.Background(), testRequest()))

	// The displaced record disappeared while pending (seat was freed);
	// the confirmed destination is still written.
	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{}, nil)

	written := map[string]domain.PreferenceRecord{}
	store.EXPECT().Upsert(mock.Anything, mock.Anything, mock.Anything).
		Run(func(_ context.Context, key string, rec domain.PreferenceRecord) {
			written[key] = rec
		}).
		Return(nil).
		Times(2)
	notifier.EXPECT().NotifyRelocationCompleted(mock.Anything, testRequest(), "2").Return()

	require.NoError(t, w.ChooseDestination(context.Background(), "2"))

	assert.Equal(t, "2", written["booking_x"].Bookings[sunday])
	assert.True(t, written["Yahav Sofer"].Overrides[sunday])
	assert.Nil(t, w.Pending())

	time.Sleep(50 * time.Millisecond)
}

func TestRelocation_VacatingSeatRejectedAsDestination(t *testing.T) {
	w, _, notifier := newWorkflow(t)

	notifier.EXPECT().NotifyRelocationRequested(mock.Anything, mock.Anything).Return()
	require.NoError(t, w.Begin(context.Background(), testRequest()))

	// Choosing the seat being vacated would complete the relocation
	// without moving anyone; it must fail and stay pending.
	err := w.ChooseDestination(context.Background(), "1")
	assert.ErrorIs(t, err, domain.ErrInvalidRelocationTarget)
	assert.NotNil(t, w.Pending())

	time.Sleep(50 * time.Millisecond)
}

func TestRelocation_ChooseWithoutPending(t *testing.T) {
	w, _, _ := newWorkflow(t)

	err := w.ChooseDestination(context.Background(), "2")
	assert.ErrorIs(t, err, domain.ErrNoRelocationPending)
}
