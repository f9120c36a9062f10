package leaderboardcache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/adapter/redis/leaderboardcache"
	"gitlab.com/codearena.net/internal/domain"
)

func newCache(t *testing.T) (*leaderboardcache.LeaderboardCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return leaderboardcache.NewLeaderboardCache(client, logging.NewNopLogger(), time.Minute), mr
}

func sampleBoard(tf domain.Timeframe) *domain.Leaderboard {
	return &domain.Leaderboard{
		Timeframe: tf,
		Entries: []domain.LeaderboardEntry{
			{Rank: 1, UserID: uuid.New(), UserName: "ada", Points: 120, TotalSolved: 8, CurrentStreak: 3},
			{Rank: 2, UserID: uuid.New(), UserName: "linus", Points: 60, TotalSolved: 4},
		},
	}
}

func TestCacheMiss(t *testing.T) {
	cache, _ := newCache(t)

	board, err := cache.Get(context.Background(), domain.TimeframeAll)
	require.NoError(t, err)
	assert.Nil(t, board)
}

func TestCacheRoundTripWithTTL(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	want := sampleBoard(domain.TimeframeWeekly)
	require.NoError(t, cache.Set(ctx, want))

	got, err := cache.Get(ctx, domain.TimeframeWeekly)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Minute, mr.TTL("leaderboard:weekly"))

	mr.FastForward(2 * time.Minute)
	got, err = cache.Get(ctx, domain.TimeframeWeekly)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCacheInvalidate(t *testing.T) {
	cache, mr := newCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, sampleBoard(domain.TimeframeAll)))
	require.NoError(t, cache.Set(ctx, sampleBoard(domain.TimeframeDaily)))
	require.NoError(t, mr.Set("session:1", "keep"))

	require.NoError(t, cache.Invalidate(ctx))

	assert.False(t, mr.Exists("leaderboard:all"))
	assert.False(t, mr.Exists("leaderboard:daily"))
	assert.True(t, mr.Exists("session:1"))
	require.NoError(t, cache.Invalidate(ctx))
}

func TestCacheCorruptEntry(t *testing.T) {
	cache, mr := newCache(t)
	require.NoError(t, mr.Set("leaderboard:monthly", "{broken"))

	board, err := cache.Get(context.Background(), domain.TimeframeMonthly)
	require.NoError(t, err)
	assert.Nil(t, board)
}
