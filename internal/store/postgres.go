// Package store implements the preference store adapter over Postgres
// and Redis. Both backends are last-writer-wins document stores with a
// change-notification channel feeding Watch.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

// notifyChannel is raised by a trigger on every insert/update/delete of
// preference_records (see migrations).
const notifyChannel = "preference_records_changed"

// resyncInterval bounds how stale a watcher can get if a NOTIFY is
// dropped during a connection hiccup.
const resyncInterval = 30 * time.Second

// PostgresStore keeps one jsonb document per record key. Upserts are
// plain last-writer-wins; there is deliberately no version column and
// no cross-document transaction, matching the store contract.
type PostgresStore struct {
	db       *dbpg.DB
	dsn      string
	log      logger.Logger
	strategy retry.Strategy
}

func NewPostgresStore(db *dbpg.DB, dsn string, log logger.Logger) *PostgresStore {
	return &PostgresStore{
		db:  db,
		dsn: dsn,
		log: log,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (s *PostgresStore) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	query := `SELECT key, doc FROM preference_records`

	rows, err := s.db.QueryWithRetry(ctx, s.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer rows.Close()

	snap := domain.Snapshot{}
	for rows.Next() {
		var key string
		var doc []byte
		if err = rows.Scan(&key, &doc); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		var rec domain.PreferenceRecord
		if err = json.Unmarshal(doc, &rec); err != nil {
			// A malformed document must not take down every
			// resolution pass; skip it and keep serving.
			s.log.Error("skipping malformed record",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
			continue
		}
		rec.Normalize()
		snap[key] = rec
	}

	return snap, rows.Err()
}

func (s *PostgresStore) Upsert(ctx context.Context, key string, rec domain.PreferenceRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal record %q: %w", domain.ErrRecordWriteFailed, key, err)
	}

	query := `INSERT INTO preference_records (key, doc, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`
	if _, err = s.db.ExecWithRetry(ctx, s.strategy, query, key, doc); err != nil {
		return fmt.Errorf("%w: upsert %q: %w", domain.ErrRecordWriteFailed, key, err)
	}

	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM preference_records WHERE key = $1`
	if _, err := s.db.ExecWithRetry(ctx, s.strategy, query, key); err != nil {
		return fmt.Errorf("%w: delete %q: %w", domain.ErrRecordWriteFailed, key, err)
	}

	return nil
}

// Watch pushes a fresh snapshot on every change notification, plus a
// periodic re-sync as a safety net. The channel closes when ctx ends.
func (s *PostgresStore) Watch(ctx context.Context) (<-chan domain.Snapshot, error) {
	listener := pq.NewListener(s.dsn, time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			s.log.Error("postgres listener event",
				logger.Int("event", int(ev)),
				logger.String("error", err.Error()),
			)
		}
	})
	if err := listener.Listen(notifyChannel); err != nil {
		listener.Close()
		return nil, fmt.Errorf("listen %s: %w", notifyChannel, err)
	}

	out := make(chan domain.Snapshot, 1)
	go func() {
		defer close(out)
		defer listener.Close()

		ticker := time.NewTicker(resyncInterval)
		defer ticker.Stop()

		s.push(ctx, out)
		for {
			select {
			case <-ctx.Done():
				return
			case <-listener.Notify:
				s.push(ctx, out)
			case <-ticker.C:
				s.push(ctx, out)
			}
		}
	}()

	return out, nil
}

func (s *PostgresStore) push(ctx context.Context, out chan domain.Snapshot) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		s.log.Error("snapshot refresh failed",
			logger.String("error", err.Error()),
		)
		return
	}
	offerLatest(ctx, out, snap)
}

// Ping verifies connectivity, used at startup.
func (s *PostgresStore) Ping(ctx context.Context) error {
	if err := s.db.Master.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
