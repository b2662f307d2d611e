package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/week"
)

func prunePolicy() week.Policy {
	return week.New(time.Thursday, 14, 8, time.UTC)
}

// Wednesday 2025-06-04; the current week started Sunday 2025-06-01.
func pruneNow() time.Time {
	return time.Date(2025, time.June, 4, 12, 0, 0, 0, time.UTC)
}

func TestPruneExpired_RemovesStaleEntries(t *testing.T) {
	engine, store, _ := newEngine(t)

	rec := domain.NewPreferenceRecord("Yahav Sofer")
	rec.Bookings["2025-05-27"] = "5"  // last week, stale
	rec.Bookings["2025-06-02"] = "5"  // this week, kept
	rec.Overrides["2025-05-26"] = true

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"Yahav Sofer": rec}, nil)

	var written domain.PreferenceRecord
	store.EXPECT().Upsert(mock.Anything, "Yahav Sofer", mock.Anything).
		Run(func(_ context.Context, _ string, r domain.PreferenceRecord) {
			written = r
		}).
		Return(nil)

	touched, err := engine.PruneExpired(context.Background(), prunePolicy(), pruneNow())

	require.NoError(t, err)
	assert.Equal(t, 1, touched)
	assert.NotContains(t, written.Bookings, "2025-05-27")
	assert.Equal(t, "5", written.Bookings["2025-06-02"])
	assert.Empty(t, written.Overrides)
}

func TestPruneExpired_CollectsEmptiedEphemeralRecord(t *testing.T) {
	engine, store, _ := newEngine(t)

	rec := domain.NewPreferenceRecord("Visitor")
	rec.Bookings["2025-05-27"] = "5"

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_x": rec}, nil)
	store.EXPECT().Delete(mock.Anything, "booking_x").Return(nil)

	touched, err := engine.PruneExpired(context.Background(), prunePolicy(), pruneNow())

	require.NoError(t, err)
	assert.Equal(t, 1, touched)
}

func TestPruneExpired_OwnerRecordNeverDeleted(t *testing.T) {
	engine, store, _ := newEngine(t)

	// An owner record whose only booking is stale shrinks but survives.
	rec := domain.NewPreferenceRecord("Yahav Sofer")
	rec.Bookings["2025-05-27"] = "5"

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"Yahav Sofer": rec}, nil)
	store.EXPECT().Upsert(mock.Anything, "Yahav Sofer", mock.Anything).Return(nil)

	touched, err := engine.PruneExpired(context.Background(), prunePolicy(), pruneNow())

	require.NoError(t, err)
	assert.Equal(t, 1, touched)
}

func TestPruneExpired_NothingStale(t *testing.T) {
	engine, store, _ := newEngine(t)

	rec := domain.NewPreferenceRecord("Yahav Sofer")
	rec.Bookings["2025-06-02"] = "5"

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"Yahav Sofer": rec}, nil)

	touched, err := engine.PruneExpired(context.Background(), prunePolicy(), pruneNow())

	require.NoError(t, err)
	assert.Zero(t, touched)
}

func TestPruneExpired_CurrentWeekHistoryKept(t *testing.T) {
	engine, store, _ := newEngine(t)

	// Monday already passed, but it is inside the current week.
	rec := domain.NewPreferenceRecord("Visitor")
	rec.Bookings["2025-06-02"] = "5"

	store.EXPECT().Snapshot(mock.Anything).Return(domain.Snapshot{"booking_x": rec}, nil)

	touched, err := engine.PruneExpired(context.Background(), prunePolicy(), pruneNow())

	require.NoError(t, err)
	assert.Zero(t, touched)
}
