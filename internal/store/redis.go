package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"

	"github.com/mobac1989/buildots-seating/internal/domain"
)

const (
	recordsHashKey = "seating:prefs"
	changedChannel = "seating:prefs:changed"
)

// RedisStore keeps every record as a JSON field of one hash. Writers
// publish on a pub/sub channel after each mutation so watchers can
// re-read the snapshot.
type RedisStore struct {
	client *redis.Client
	log    logger.Logger
}

func NewRedisStore(client *redis.Client, log logger.Logger) *RedisStore {
	return &RedisStore{client: client, log: log}
}

func (s *RedisStore) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	fields, err := s.client.HGetAll(ctx, recordsHashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", recordsHashKey, err)
	}

	snap := domain.Snapshot{}
	for key, doc := range fields {
		var rec domain.PreferenceRecord
		if err := json.Unmarshal([]byte(doc), &rec); err != nil {
			s.log.Error("skipping malformed record",
				logger.String("key", key),
				logger.String("error", err.Error()),
			)
			continue
		}
		rec.Normalize()
		snap[key] = rec
	}

	return snap, nil
}

func (s *RedisStore) Upsert(ctx context.Context, key string, rec domain.PreferenceRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: marshal record %q: %w", domain.ErrRecordWriteFailed, key, err)
	}
	if err = s.client.HSet(ctx, recordsHashKey, key, doc).Err(); err != nil {
		return fmt.Errorf("%w: upsert %q: %w", domain.ErrRecordWriteFailed, key, err)
	}
	s.publishChanged(ctx)
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.HDel(ctx, recordsHashKey, key).Err(); err != nil {
		return fmt.Errorf("%w: delete %q: %w", domain.ErrRecordWriteFailed, key, err)
	}
	s.publishChanged(ctx)
	return nil
}

func (s *RedisStore) publishChanged(ctx context.Context) {
	if err := s.client.Publish(ctx, changedChannel, "1").Err(); err != nil {
		// The periodic re-sync in Watch covers a lost publish.
		s.log.Error("publish change notification failed",
			logger.String("error", err.Error()),
		)
	}
}

func (s *RedisStore) Watch(ctx context.Context) (<-chan domain.Snapshot, error) {
	sub := s.client.Subscribe(ctx, changedChannel)
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("subscribe %s: %w", changedChannel, err)
	}

	out := make(chan domain.Snapshot, 1)
	go func() {
		defer close(out)
		defer sub.Close()

		ticker := time.NewTicker(resyncInterval)
		defer ticker.Stop()

		msgs := sub.Channel()
		s.push(ctx, out)
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				s.push(ctx, out)
			case <-ticker.C:
				s.push(ctx, out)
			}
		}
	}()

	return out, nil
}

func (s *RedisStore) push(ctx context.Context, out chan domain.Snapshot) {
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
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("pinging redis: %w", err)
	}
	return nil
}
