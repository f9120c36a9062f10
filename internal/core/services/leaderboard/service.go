package leaderboard

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type ILeaderboardService interface {
	// Leaderboard returns the ranked top users for a timeframe
	Leaderboard(ctx context.Context, timeframe domain.Timeframe) (*domain.Leaderboard, error)

	// Invalidate drops cached boards after points changed
	Invalidate(ctx context.Context)
}
