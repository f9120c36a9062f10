package leaderboard

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

// Limit is the number of users shown on a board
const Limit = 100

var _ ILeaderboardService = (*LeaderboardService)(nil)

type LeaderboardService struct {
	userPort secondary.UserPort
	cache    secondary.LeaderboardCache
	logger   primary.Logger
	now      func() time.Time
}

// NewLeaderboardService creates the service. cache may be nil to always read through.
func NewLeaderboardService(userPort secondary.UserPort, cache secondary.LeaderboardCache, logger primary.Logger) *LeaderboardService {
	return &LeaderboardService{
		userPort: userPort,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock replaces the clock used to compute timeframe boundaries
func (s *LeaderboardService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *LeaderboardService) Leaderboard(ctx context.Context, timeframe domain.Timeframe) (*domain.Leaderboard, error) {
	timeframe = domain.ParseTimeframe(string(timeframe))

	if s.cache != nil {
		board, err := s.cache.Get(ctx, timeframe)
		if err != nil {
			s.logger.Warn("Leaderboard cache unavailable", "timeframe", timeframe, "error", err)
		} else if board != nil {
			return board, nil
		}
	}

	entries, err := s.userPort.Leaderboard(ctx, Since(timeframe, s.now()), Limit)
	if err != nil {
		s.logger.Error("Failed to load leaderboard", "timeframe", timeframe, "error", err)
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	board := &domain.Leaderboard{Timeframe: timeframe, Entries: entries}
	if s.cache != nil {
		if err := s.cache.Set(ctx, board); err != nil {
			s.logger.Warn("Failed to cache leaderboard", "timeframe", timeframe, "error", err)
		}
	}
	return board, nil
}

func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Failed to invalidate leaderboard cache", "error", err)
	}
}

// Since returns the earliest last-solve time a user needs to appear on a
// board. Weeks start on Sunday. The zero time means no filter.
func Since(timeframe domain.Timeframe, now time.Time) time.Time {
	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch timeframe {
	case domain.TimeframeDaily:
		return startOfDay
	case domain.TimeframeWeekly:
		return startOfDay.AddDate(0, 0, -int(now.Weekday()))
	case domain.TimeframeMonthly:
		return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}
