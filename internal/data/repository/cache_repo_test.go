package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMemorySubmissionGuard(t *testing.T) {
	now := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	guard := NewMemorySubmissionGuard(func() time.Time { return now })
	ctx := context.Background()

	ok, err := guard.Acquire(ctx, "booking:submit:u1:hotel:r1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.Acquire(ctx, "booking:submit:u1:hotel:r1", 5*time.Second)
	require.NoError(t, err)
	assert.False(t, ok, "second submission inside the window must be rejected")

	ok, err = guard.Acquire(ctx, "booking:submit:u1:hotel:r2", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "different item is independent")

	now = now.Add(5 * time.Second)
	ok, err = guard.Acquire(ctx, "booking:submit:u1:hotel:r1", 5*time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "key expires after ttl")
}

func TestMemorySubmissionGuard_Release(t *testing.T) {
	guard := NewMemorySubmissionGuard(time.Now)
	ctx := context.Background()
	key := "booking:submit:u1:tour:t1"

	ok, err := guard.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, guard.Release(ctx, key))
	require.NoError(t, guard.Release(ctx, key), "releasing a free key is fine")

	ok, err = guard.Acquire(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "released key can be taken again inside the window")
}

func TestNewSnapshotCache_WithoutRedisIsNoop(t *testing.T) {
	cache := NewSnapshotCache(nil, time.Minute, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, CacheKeyHotels, []string{"a"}))

	var out []string
	hit, err := cache.Get(ctx, CacheKeyHotels, &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, out)
	assert.NoError(t, cache.Invalidate(ctx, CacheKeyHotels))
}
