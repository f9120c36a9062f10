package submission

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/core/services/judge"
	"gitlab.com/codearena.net/internal/core/services/leaderboard"
	"gitlab.com/codearena.net/internal/core/services/stats"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

const defaultRecentLimit = 10

var _ ISubmissionService = (*SubmissionService)(nil)

type SubmissionService struct {
	problemRepo    secondary.ProblemRepository
	submissionRepo secondary.SubmissionRepository
	userPort       secondary.UserPort
	judge          judge.IJudgeService
	stats          stats.IStatsService
	leaderboard    leaderboard.ILeaderboardService
	publisher      secondary.SubmissionEventPublisher
	logger         primary.Logger
	recentLimit    int
	now            func() time.Time
}

type Dependencies struct {
	ProblemRepo    secondary.ProblemRepository
	SubmissionRepo secondary.SubmissionRepository
	UserPort       secondary.UserPort
	Judge          judge.IJudgeService
	Stats          stats.IStatsService
	Leaderboard    leaderboard.ILeaderboardService
	Publisher      secondary.SubmissionEventPublisher
	Logger         primary.Logger
	RecentLimit    int
}

func NewSubmissionService(deps Dependencies) *SubmissionService {
	recent := deps.RecentLimit
	if recent <= 0 {
		recent = defaultRecentLimit
	}
	return &SubmissionService{
		problemRepo:    deps.ProblemRepo,
		submissionRepo: deps.SubmissionRepo,
		userPort:       deps.UserPort,
		judge:          deps.Judge,
		stats:          deps.Stats,
		leaderboard:    deps.Leaderboard,
		publisher:      deps.Publisher,
		logger:         deps.Logger,
		recentLimit:    recent,
		now:            time.Now,
	}
}

// SetClock replaces the clock used for solve dates
func (s *SubmissionService) SetClock(now func() time.Time) {
	if now != nil {
		s.now = now
	}
}

func (s *SubmissionService) Submit(ctx context.Context, userID uuid.UUID, problemID string, language string, code string) (*domain.SubmissionResult, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errs.ErrCodeRequired
	}
	if strings.TrimSpace(language) == "" {
		return nil, errs.ErrLanguageRequired
	}
	lang := domain.ParseLanguage(language)
	if !s.judge.Supports(lang) {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedLanguage, language)
	}

	problem, err := s.problemRepo.GetBySlug(ctx, problemID)
	if err != nil {
		s.logger.Error("Failed to load problem", "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to load problem: %w", err)
	}
	if problem == nil {
		return nil, errs.ErrProblemNotFound
	}
	if len(problem.TestCases) == 0 {
		return nil, errs.ErrNoTestCases
	}
	problem.ApplyDefaults()

	s.logger.Info("Running tests", "problemId", problem.ID, "userId", userID, "language", lang, "cases", len(problem.TestCases))

	outcome, err := s.judge.JudgeCases(ctx, lang, code, problem.TestCases, int64(problem.TimeLimitMs))
	if err != nil {
		return nil, err
	}

	points := s.judge.Score(problem.Difficulty, *outcome)
	if outcome.Verdict == domain.VerdictAccepted {
		s.awardSolve(ctx, userID, problem, points)
	}

	submission := domain.NewSubmission(userID, problem.ID, lang, code, *outcome, points)
	if err := s.submissionRepo.Create(ctx, submission); err != nil {
		s.logger.Error("Failed to save submission", "problemId", problem.ID, "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}

	s.logger.Info("Submission complete",
		"submissionId", submission.ID,
		"status", outcome.Verdict,
		"passed", outcome.PassedTests,
		"total", outcome.TotalTests,
		"points", points)

	s.publish(ctx, submission)

	return &domain.SubmissionResult{
		SubmissionID: submission.ID,
		JudgeOutcome: *outcome,
		PointsEarned: points,
	}, nil
}

// awardSolve credits points and the first-solve stats. Failures are logged
// and never change the verdict already reached.
func (s *SubmissionService) awardSolve(ctx context.Context, userID uuid.UUID, problem *domain.Problem, points int) {
	if points > 0 {
		if err := s.userPort.AddPoints(ctx, userID, points); err != nil {
			s.logger.Error("Failed to add points", "userId", userID, "points", points, "error", err)
		}
	}
	if err := s.stats.RecordSolve(ctx, userID, problem.ID, problem.Difficulty, s.now()); err != nil {
		s.logger.Error("Failed to update user stats", "userId", userID, "problemId", problem.ID, "error", err)
	}
	if s.leaderboard != nil {
		s.leaderboard.Invalidate(ctx)
	}
}

func (s *SubmissionService) publish(ctx context.Context, submission *domain.Submission) {
	if s.publisher == nil {
		return
	}
	event := domain.SubmissionJudgedEvent{
		SubmissionID: submission.ID,
		UserID:       submission.UserID,
		ProblemID:    submission.ProblemID,
		Language:     submission.Language,
		Verdict:      submission.Verdict,
		PassedTests:  submission.PassedTests,
		TotalTests:   submission.TotalTests,
		RuntimeMs:    submission.AverageRuntimeMs,
		PointsEarned: submission.PointsEarned,
		Timestamp:    submission.CreatedAt,
	}
	if err := s.publisher.PublishJudged(ctx, event); err != nil {
		s.logger.Warn("Failed to publish submission event", "submissionId", submission.ID, "error", err)
	}
}

func (s *SubmissionService) ListForProblem(ctx context.Context, userID uuid.UUID, problemID string) ([]*domain.Submission, error) {
	submissions, err := s.submissionRepo.ListRecent(ctx, userID, problemID, s.recentLimit)
	if err != nil {
		s.logger.Error("Failed to list submissions", "userId", userID, "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	for _, sub := range submissions {
		sub.Code = ""
	}
	return submissions, nil
}

func (s *SubmissionService) Get(ctx context.Context, userID uuid.UUID, submissionID uuid.UUID) (*domain.Submission, error) {
	submission, err := s.submissionRepo.Get(ctx, userID, submissionID)
	if err != nil {
		s.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}
	if submission == nil {
		return nil, errs.ErrSubmissionNotFound
	}
	return submission, nil
}
