// Package store wraps the Redis key-value store the read-side API serves
// from. The pipeline publishes the generated artifact here; the API loads it
// and keeps daily-game state (submissions, usage counts) alongside.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Artifact keys, one per output mode. The game client reads the legacy
// name-list document and the richer v2 document under separate keys.
const (
	KeyLegacy    = "players"
	KeyDirectory = "playersv2"
)

// Store is the Redis-backed key-value store.
type Store struct {
	rdb *redis.Client
}

// New connects to Redis and verifies the connection.
func New(ctx context.Context, redisURL string) (*Store, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &Store{rdb: rdb}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// Ping verifies connectivity, for health checks.
func (s *Store) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}

// PutDatabase uploads a generated artifact under the given key. The document
// has no TTL; it is replaced wholesale by the next publish.
func (s *Store) PutDatabase(ctx context.Context, key string, doc []byte) error {
	if err := s.rdb.Set(ctx, key, doc, 0).Err(); err != nil {
		return fmt.Errorf("put database %s: %w", key, err)
	}
	return nil
}

// GetDatabase loads an artifact. Returns redis.Nil (wrapped) when the key
// has never been published.
func (s *Store) GetDatabase(ctx context.Context, key string) ([]byte, error) {
	doc, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, fmt.Errorf("get database %s: %w", key, err)
	}
	return doc, nil
}

// IsNotFound reports whether err means the key does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, redis.Nil)
}

// ---------------------------------------------------------------------------
// Daily game state
// ---------------------------------------------------------------------------

// submissionTTL keeps daily submissions and usage stats around long enough
// for leaderboards without growing the store forever.
const submissionTTL = 14 * 24 * time.Hour

func submissionKey(date, userID string) string {
	return fmt.Sprintf("daily_submission_%s_%s", date, userID)
}

func usageKey(date string) string {
	return fmt.Sprintf("daily_usage_%s", date)
}

// SubmissionExists reports whether the user already submitted for the date.
func (s *Store) SubmissionExists(ctx context.Context, date, userID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, submissionKey(date, userID)).Result()
	if err != nil {
		return false, fmt.Errorf("check submission: %w", err)
	}
	return n > 0, nil
}

// SaveSubmission stores a user's daily solution document.
func (s *Store) SaveSubmission(ctx context.Context, date, userID string, doc []byte) error {
	if err := s.rdb.Set(ctx, submissionKey(date, userID), doc, submissionTTL).Err(); err != nil {
		return fmt.Errorf("save submission: %w", err)
	}
	return nil
}

// IncrementUsage bumps the per-player usage counters for the date.
func (s *Store) IncrementUsage(ctx context.Context, date string, players []string) error {
	key := usageKey(date)
	pipe := s.rdb.Pipeline()
	for _, p := range players {
		pipe.HIncrBy(ctx, key, p, 1)
	}
	pipe.Expire(ctx, key, submissionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment usage: %w", err)
	}
	return nil
}
