package leaderboardcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

const leaderboardKeyPrefix = "leaderboard:"

var _ secondary.LeaderboardCache = (*LeaderboardCache)(nil)

// LeaderboardCache keeps one JSON document per timeframe in Redis
type LeaderboardCache struct {
	redisClient *redis.Client
	logger      primary.Logger
	ttl         time.Duration
}

func NewLeaderboardCache(redisClient *redis.Client, logger primary.Logger, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{
		redisClient: redisClient,
		logger:      logger,
		ttl:         ttl,
	}
}

func key(timeframe domain.Timeframe) string {
	return leaderboardKeyPrefix + string(timeframe)
}

func (c *LeaderboardCache) Get(ctx context.Context, timeframe domain.Timeframe) (*domain.Leaderboard, error) {
	data, err := c.redisClient.Get(ctx, key(timeframe)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cached leaderboard: %w", err)
	}

	var board domain.Leaderboard
	if err := json.Unmarshal(data, &board); err != nil {
		c.logger.Warn("Dropping corrupt leaderboard cache entry", "timeframe", timeframe, "error", err)
		return nil, nil
	}
	return &board, nil
}

func (c *LeaderboardCache) Set(ctx context.Context, board *domain.Leaderboard) error {
	data, err := json.Marshal(board)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %w", err)
	}

	if err := c.redisClient.Set(ctx, key(board.Timeframe), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache leaderboard: %w", err)
	}
	return nil
}

// Invalidate removes the cached boards of every timeframe
func (c *LeaderboardCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	var keys []string
	for {
		batch, next, err := c.redisClient.Scan(ctx, cursor, leaderboardKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan leaderboard keys: %w", err)
		}
		keys = append(keys, batch...)
		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate leaderboard cache: %w", err)
	}
	c.logger.Debug("Leaderboard cache invalidated", "keys", len(keys))
	return nil
}
