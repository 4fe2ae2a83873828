package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type sectionKey string

func TestInMemoryCacheManager_SetGet(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[sectionKey, string]("test", DefaultExpiration, DefaultCleanupInterval)

	_, ok := cache.Get(ctx, "a")
	require.False(t, ok)

	cache.Set(ctx, "a", "rendered", 0)
	got, ok := cache.Get(ctx, "a")
	require.True(t, ok)
	require.Equal(t, "rendered", got)
	require.Equal(t, 1, cache.Len())

	cache.Delete(ctx, "a")
	_, ok = cache.Get(ctx, "a")
	require.False(t, ok)
}

func TestInMemoryCacheManager_Expiration(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[sectionKey, int]("test", DefaultExpiration, DefaultCleanupInterval)

	cache.Set(ctx, "short", 1, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		_, ok := cache.Get(ctx, "short")
		return !ok
	}, time.Second, 5*time.Millisecond)
}

func TestInMemoryCacheManager_Flush(t *testing.T) {
	ctx := context.Background()
	cache := NewInMemoryCacheManager[sectionKey, int]("test", DefaultExpiration, DefaultCleanupInterval)
	cache.Set(ctx, "a", 1, 0)
	cache.Set(ctx, "b", 2, 0)

	cache.Flush(ctx)
	require.Equal(t, 0, cache.Len())
}

func TestReadThroughCache_ComputesOnce(t *testing.T) {
	ctx := context.Background()
	calls := 0
	rt := NewReadThroughCache[sectionKey, string, string](
		NewInMemoryCacheManager[sectionKey, string]("test", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, in string) (string, error) {
			calls++
			return "<" + in + ">", nil
		},
	)

	for range 3 {
		got, err := rt.Get(ctx, "k", "body", 0)
		require.NoError(t, err)
		require.Equal(t, "<body>", got)
	}
	require.Equal(t, 1, calls)

	rt.Invalidate(ctx)
	_, err := rt.Get(ctx, "k", "body", 0)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_ErrorsNotCached(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	calls := 0
	rt := NewReadThroughCache[sectionKey, string, string](
		NewInMemoryCacheManager[sectionKey, string]("test", DefaultExpiration, DefaultCleanupInterval),
		func(context.Context, string) (string, error) {
			calls++
			return "", boom
		},
	)

	_, err := rt.Get(ctx, "k", "x", 0)
	require.ErrorIs(t, err, boom)
	_, err = rt.Get(ctx, "k", "x", 0)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, calls)
}
