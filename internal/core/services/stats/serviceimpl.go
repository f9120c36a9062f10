package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

const heatmapDateLayout = "2006-01-02"

var _ IStatsService = (*StatsService)(nil)

type StatsService struct {
	userPort secondary.UserPort
	logger   primary.Logger
	now      func() time.Time
}

func NewStatsService(userPort secondary.UserPort, logger primary.Logger) *StatsService {
	return &StatsService{
		userPort: userPort,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock replaces the clock used for the heatmap window
func (s *StatsService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *StatsService) RecordSolve(ctx context.Context, userID uuid.UUID, problemID string, difficulty domain.Difficulty, now time.Time) error {
	applied := false
	err := s.userPort.UpdateStats(ctx, userID, func(stats domain.UserStats) (domain.UserStats, bool) {
		next, changed := ApplySolve(stats, problemID, difficulty, now)
		applied = changed
		return next, changed
	})
	if err != nil {
		s.logger.Error("Failed to record solve", "userId", userID, "problemId", problemID, "error", err)
		return fmt.Errorf("failed to record solve: %w", err)
	}

	if applied {
		s.logger.Info("Recorded first solve", "userId", userID, "problemId", problemID, "difficulty", difficulty)
	}
	return nil
}

func (s *StatsService) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	user, err := s.userPort.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get user", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, errs.ErrUserNotFound
	}

	stats, err := s.userPort.GetStats(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get user stats", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	if stats == nil {
		return nil, errs.ErrUserNotFound
	}

	return &domain.DashboardStats{
		Stats:           *stats,
		Points:          user.Points,
		ActivityHeatmap: ActivityHeatmap(stats.SolvedProblems, s.now()),
	}, nil
}

// ActivityHeatmap counts solves per UTC day over the year before now
func ActivityHeatmap(solved []domain.SolvedProblem, now time.Time) map[string]int {
	since := now.AddDate(-1, 0, 0)
	heatmap := make(map[string]int)
	for _, p := range solved {
		if p.SolvedAt.Before(since) {
			continue
		}
		heatmap[p.SolvedAt.UTC().Format(heatmapDateLayout)]++
	}
	return heatmap
}
