package secondary

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

type UserPort interface {
	Create(ctx context.Context, user *domain.Users) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Users, error)
	GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Users, error)

	// AddPoints atomically increments the point total of a user
	AddPoints(ctx context.Context, id uuid.UUID, points int) error

	// GetStats loads the stats and solved history of a user
	GetStats(ctx context.Context, id uuid.UUID) (*domain.UserStats, error)

	// UpdateStats loads the stats under a row lock, applies fn and stores the
	// result when fn reports a change. Writes for one user are serialized.
	UpdateStats(ctx context.Context, id uuid.UUID, fn func(stats domain.UserStats) (domain.UserStats, bool)) error

	// Leaderboard returns users active since the given time (zero means all), best first
	Leaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error)
}
