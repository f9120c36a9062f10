package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

type fakeUsers struct {
	secondary.UserPort
	entries []domain.LeaderboardEntry
	calls   int
	since   time.Time
	limit   int
}

func (f *fakeUsers) Leaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	f.calls++
	f.since = since
	f.limit = limit
	out := make([]domain.LeaderboardEntry, len(f.entries))
	copy(out, f.entries)
	return out, nil
}

type fakeCache struct {
	boards      map[domain.Timeframe]*domain.Leaderboard
	getErr      error
	invalidated int
}

func (f *fakeCache) Get(ctx context.Context, tf domain.Timeframe) (*domain.Leaderboard, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.boards[tf], nil
}

func (f *fakeCache) Set(ctx context.Context, board *domain.Leaderboard) error {
	f.boards[board.Timeframe] = board
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	f.boards = map[domain.Timeframe]*domain.Leaderboard{}
	return nil
}

func TestSince(t *testing.T) {
	// Wednesday
	now := time.Date(2025, time.May, 14, 15, 30, 0, 0, time.UTC)

	assert.True(t, Since(domain.TimeframeAll, now).IsZero())
	assert.Equal(t, time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC), Since(domain.TimeframeDaily, now))
	assert.Equal(t, time.Date(2025, time.May, 11, 0, 0, 0, 0, time.UTC), Since(domain.TimeframeWeekly, now))
	assert.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), Since(domain.TimeframeMonthly, now))

	sunday := time.Date(2025, time.May, 11, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.May, 11, 0, 0, 0, 0, time.UTC), Since(domain.TimeframeWeekly, sunday))
}

func TestLeaderboardRanksAndCaches(t *testing.T) {
	users := &fakeUsers{entries: []domain.LeaderboardEntry{
		{UserID: uuid.New(), UserName: "ada", Points: 120},
		{UserID: uuid.New(), UserName: "linus", Points: 60},
	}}
	cache := &fakeCache{boards: map[domain.Timeframe]*domain.Leaderboard{}}
	svc := NewLeaderboardService(users, cache, logging.NewNopLogger())
	svc.SetClock(func() time.Time { return time.Date(2025, time.May, 14, 15, 0, 0, 0, time.UTC) })
	ctx := context.Background()

	board, err := svc.Leaderboard(ctx, domain.TimeframeDaily)
	require.NoError(t, err)
	assert.Equal(t, domain.TimeframeDaily, board.Timeframe)
	require.Len(t, board.Entries, 2)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, 2, board.Entries[1].Rank)
	assert.Equal(t, Limit, users.limit)
	assert.Equal(t, time.Date(2025, time.May, 14, 0, 0, 0, 0, time.UTC), users.since)

	_, err = svc.Leaderboard(ctx, domain.TimeframeDaily)
	require.NoError(t, err)
	assert.Equal(t, 1, users.calls)

	svc.Invalidate(ctx)
	assert.Equal(t, 1, cache.invalidated)
	_, err = svc.Leaderboard(ctx, domain.TimeframeDaily)
	require.NoError(t, err)
	assert.Equal(t, 2, users.calls)
}

func TestLeaderboardUnknownTimeframe(t *testing.T) {
	users := &fakeUsers{}
	svc := NewLeaderboardService(users, nil, logging.NewNopLogger())

	board, err := svc.Leaderboard(context.Background(), domain.Timeframe("yearly"))
	require.NoError(t, err)
	assert.Equal(t, domain.TimeframeAll, board.Timeframe)
	assert.True(t, users.since.IsZero())
	assert.NotNil(t, board.Entries)
}

func TestLeaderboardCacheErrorFallsThrough(t *testing.T) {
	users := &fakeUsers{entries: []domain.LeaderboardEntry{{UserName: "ada"}}}
	cache := &fakeCache{boards: map[domain.Timeframe]*domain.Leaderboard{}, getErr: errors.New("redis down")}
	svc := NewLeaderboardService(users, cache, logging.NewNopLogger())

	board, err := svc.Leaderboard(context.Background(), domain.TimeframeAll)
	require.NoError(t, err)
	assert.Len(t, board.Entries, 1)
	assert.Equal(t, 1, users.calls)
}
