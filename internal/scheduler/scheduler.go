package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/week"
)

type recordPruner interface {
	PruneExpired(ctx context.Context, policy week.Policy, now time.Time) (int, error)
}

// Scheduler polls the clock: it prunes records that fell out of the
// bookable range and logs lock-window transitions so the weekly
// Thursday cutover is visible in the service log.
type Scheduler struct {
	pruner   recordPruner
	policy   week.Policy
	interval time.Duration
	logger   logger.Logger

	lastLocked  bool
	lastActive  bool
	initialized bool
}

func New(
	pruner recordPruner,
	policy week.Policy,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		pruner:   pruner,
		policy:   policy,
		interval: interval,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	now := s.policy.Now()

	locked := s.policy.IsNextWeekLocked(now)
	active := s.policy.IsCurrentWeekActive(now)
	if !s.initialized || locked != s.lastLocked || active != s.lastActive {
		s.logger.Info("time window state",
			logger.Any("next_week_locked", locked),
			logger.Any("current_week_active", active),
		)
		s.lastLocked = locked
		s.lastActive = active
		s.initialized = true
	}

	pruned, err := s.pruner.PruneExpired(ctx, s.policy, now)
	if err != nil {
		s.logger.Error("failed to prune expired entries",
			logger.String("error", err.Error()),
		)
		return
	}
	if pruned > 0 {
		s.logger.Info("records pruned",
			logger.Int("count", pruned),
		)
	}
}
