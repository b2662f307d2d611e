package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/domain"
	"github.com/mobac1989/buildots-seating/internal/week"
)

// PruneExpired drops bookings and overrides dated before the current
// week's Sunday from every record, and deletes ephemeral records whose
// bookings empty out. Returns how many records were touched.
//
// History inside the current week is kept: the current-week map still
// shows today and the days just passed.
func (e *BookingEngine) PruneExpired(ctx context.Context, policy week.Policy, now time.Time) (int, error) {
	snap, err := e.store.Snapshot(ctx)
	if err != nil {
		return 0, fmt.Errorf("read latest snapshot: %w", err)
	}
	cutoff := policy.CurrentWeekRange(now)[0]

	touched := 0
	for key, rec := range snap {
		stale := false
		for date := range rec.Bookings {
			if date < cutoff {
				stale = true
				break
			}
		}
		if !stale {
			for date := range rec.Overrides {
				if date < cutoff {
					stale = true
					break
				}
			}
		}
		if !stale {
			continue
		}

		clean := rec.Clone()
		for date := range clean.Bookings {
			if date < cutoff {
				delete(clean.Bookings, date)
			}
		}
		for date := range clean.Overrides {
			if date < cutoff {
				delete(clean.Overrides, date)
			}
		}

		if len(clean.Bookings) == 0 && domain.IsEphemeralKey(key) {
			if err := e.store.Delete(ctx, key); err != nil {
				e.metrics.WriteFailure()
				return touched, err
			}
		} else {
			if err := e.store.Upsert(ctx, key, clean); err != nil {
				e.metrics.WriteFailure()
				return touched, err
			}
		}
		touched++
	}

	if touched > 0 {
		e.logger.Info("expired entries pruned",
			logger.Int("records", touched),
			logger.String("cutoff", cutoff),
		)
	}

	return touched, nil
}
