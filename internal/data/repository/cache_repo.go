package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheKeyHotels holds every hotel with its rooms.
const CacheKeyHotels = "snapshot:hotels"

// SnapshotCache keeps JSON copies of whole collections.
type SnapshotCache interface {
	// Get decodes the cached value into dst and reports whether it was present.
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
}

// SubmissionGuard rejects a repeated submission for the same key inside ttl.
// A submission that fails releases its key so the user can retry at once.
type SubmissionGuard interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

type redisSnapshotCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewSnapshotCache returns a Redis backed cache, or a no-op cache when rdb is nil.
func NewSnapshotCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) SnapshotCache {
	if rdb == nil {
		return noopSnapshotCache{}
	}
	return &redisSnapshotCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("repository", "snapshot_cache")),
	}
}

func (c *redisSnapshotCache) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		c.log.Warn("Failed to read snapshot", zap.Error(err), zap.String("key", key))
		return false, fmt.Errorf("read snapshot %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("Corrupt snapshot dropped", zap.Error(err), zap.String("key", key))
		_ = c.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (c *redisSnapshotCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode snapshot %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to write snapshot", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("write snapshot %s: %w", key, err)
	}
	return nil
}

func (c *redisSnapshotCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("Failed to invalidate snapshot", zap.Error(err), zap.Strings("keys", keys))
		return fmt.Errorf("invalidate snapshot: %w", err)
	}
	return nil
}

type noopSnapshotCache struct{}

func (noopSnapshotCache) Get(context.Context, string, interface{}) (bool, error) { return false, nil }
func (noopSnapshotCache) Set(context.Context, string, interface{}) error         { return nil }
func (noopSnapshotCache) Invalidate(context.Context, ...string) error            { return nil }

type redisSubmissionGuard struct {
	rdb *redis.Client
	log *zap.Logger
}

// NewSubmissionGuard returns a Redis SET NX guard, or an in-process guard when rdb is nil.
func NewSubmissionGuard(rdb *redis.Client, log *zap.Logger) SubmissionGuard {
	if rdb == nil {
		return NewMemorySubmissionGuard(time.Now)
	}
	return &redisSubmissionGuard{
		rdb: rdb,
		log: log.With(zap.String("repository", "submission_guard")),
	}
}

func (g *redisSubmissionGuard) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := g.rdb.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		g.log.Error("Failed to acquire submission key", zap.Error(err), zap.String("key", key))
		return false, fmt.Errorf("acquire submission key: %w", err)
	}
	return ok, nil
}

func (g *redisSubmissionGuard) Release(ctx context.Context, key string) error {
	if err := g.rdb.Del(ctx, key).Err(); err != nil {
		g.log.Warn("Failed to release submission key", zap.Error(err), zap.String("key", key))
		return fmt.Errorf("release submission key: %w", err)
	}
	return nil
}

type memorySubmissionGuard struct {
	mu      sync.Mutex
	now     func() time.Time
	expires map[string]time.Time
}

func NewMemorySubmissionGuard(now func() time.Time) SubmissionGuard {
	return &memorySubmissionGuard{
		now:     now,
		expires: make(map[string]time.Time),
	}
}

func (g *memorySubmissionGuard) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	for k, exp := range g.expires {
		if !now.Before(exp) {
			delete(g.expires, k)
		}
	}

	if _, held := g.expires[key]; held {
		return false, nil
	}
	g.expires[key] = now.Add(ttl)
	return true, nil
}

func (g *memorySubmissionGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	delete(g.expires, key)
	g.mu.Unlock()
	return nil
}
