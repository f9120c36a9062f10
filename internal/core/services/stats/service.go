package stats

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

type IStatsService interface {
	// RecordSolve applies a first solve to the user's counters and streak
	RecordSolve(ctx context.Context, userID uuid.UUID, problemID string, difficulty domain.Difficulty, now time.Time) error

	// Dashboard returns stats, points and the solve heatmap of the last year
	Dashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error)
}
