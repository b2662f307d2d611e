package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/scheduler/mocks"
	"github.com/mobac1989/buildots-seating/internal/week"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func testPolicy() week.Policy {
	return week.New(time.Thursday, 14, 8, time.UTC)
}

func TestScheduler_Tick_Prunes(t *testing.T) {
	pruner := mocks.NewMockRecordPruner(t)
	log := newTestLogger(t)

	s := New(pruner, testPolicy(), 50*time.Millisecond, log)

	pruner.EXPECT().PruneExpired(mock.Anything, mock.Anything, mock.Anything).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(pruner.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	pruner := mocks.NewMockRecordPruner(t)
	log := newTestLogger(t)

	s := New(pruner, testPolicy(), 50*time.Millisecond, log)

	pruner.EXPECT().PruneExpired(mock.Anything, mock.Anything, mock.Anything).Return(0, errors.New("store error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(pruner.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	pruner := mocks.NewMockRecordPruner(t)
	log := newTestLogger(t)

	s := New(pruner, testPolicy(), time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	pruner := mocks.NewMockRecordPruner(t)
	log := newTestLogger(t)

	s := New(pruner, testPolicy(), 30*time.Millisecond, log)

	pruner.EXPECT().PruneExpired(mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	calls := len(pruner.Calls)
	assert.GreaterOrEqual(t, calls, 3)
}
