package secondary

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type LeaderboardCache interface {
	// Get returns nil, nil on a cache miss
	Get(ctx context.Context, timeframe domain.Timeframe) (*domain.Leaderboard, error)
	Set(ctx context.Context, board *domain.Leaderboard) error
	Invalidate(ctx context.Context) error
}
