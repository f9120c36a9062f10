package submission_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/core/services/judge"
	"gitlab.com/codearena.net/internal/core/services/submission"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

type fakeExecutor struct {
	calls  int
	output func(call int) domain.ExecutionResult
}

func (f *fakeExecutor) Execute(ctx context.Context, req domain.ExecutionRequest) domain.ExecutionResult {
	f.calls++
	return f.output(f.calls)
}

func (f *fakeExecutor) Supports(language domain.Language) bool {
	return language == domain.LanguageJavaScript || language == domain.LanguagePython
}

type fakeProblems struct {
	problems map[string]*domain.Problem
}

func (f *fakeProblems) GetBySlug(ctx context.Context, slug string) (*domain.Problem, error) {
	return f.problems[slug], nil
}

func (f *fakeProblems) List(ctx context.Context) ([]*domain.Problem, error) {
	return nil, nil
}

func (f *fakeProblems) Upsert(ctx context.Context, p *domain.Problem) error {
	return nil
}

func (f *fakeProblems) Delete(ctx context.Context, slug string) (bool, error) {
	return false, nil
}

type fakeSubmissions struct {
	created []*domain.Submission
	err     error
}

func (f *fakeSubmissions) Create(ctx context.Context, s *domain.Submission) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeSubmissions) ListRecent(ctx context.Context, userID uuid.UUID, problemID string, limit int) ([]*domain.Submission, error) {
	out := make([]*domain.Submission, 0)
	for i := len(f.created) - 1; i >= 0 && len(out) < limit; i-- {
		s := f.created[i]
		if s.UserID == userID && s.ProblemID == problemID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeSubmissions) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Submission, error) {
	for _, s := range f.created {
		if s.ID == id && s.UserID == userID {
			return s, nil
		}
	}
	return nil, nil
}

type fakeUsers struct {
	secondary.UserPort
	points map[uuid.UUID]int
	err    error
}

func (f *fakeUsers) AddPoints(ctx context.Context, id uuid.UUID, points int) error {
	if f.err != nil {
		return f.err
	}
	f.points[id] += points
	return nil
}

type solve struct {
	userID     uuid.UUID
	problemID  string
	difficulty domain.Difficulty
}

type fakeStats struct {
	solves []solve
}

func (f *fakeStats) RecordSolve(ctx context.Context, userID uuid.UUID, problemID string, difficulty domain.Difficulty, now time.Time) error {
	f.solves = append(f.solves, solve{userID, problemID, difficulty})
	return nil
}

func (f *fakeStats) Dashboard(ctx context.Context, userID uuid.UUID) (*domain.DashboardStats, error) {
	return nil, nil
}

type fakeLeaderboard struct {
	invalidations int
}

func (f *fakeLeaderboard) Leaderboard(ctx context.Context, tf domain.Timeframe) (*domain.Leaderboard, error) {
	return nil, nil
}

func (f *fakeLeaderboard) Invalidate(ctx context.Context) {
	f.invalidations++
}

type fakePublisher struct {
	events []domain.SubmissionJudgedEvent
	err    error
}

func (f *fakePublisher) PublishJudged(ctx context.Context, e domain.SubmissionJudgedEvent) error {
	f.events = append(f.events, e)
	return f.err
}

type fixture struct {
	svc         *submission.SubmissionService
	exec        *fakeExecutor
	submissions *fakeSubmissions
	users       *fakeUsers
	stats       *fakeStats
	leaderboard *fakeLeaderboard
	publisher   *fakePublisher
}

const twoSumJS = "var twoSum = function(nums, target) { return [0, 1]; };"

func newFixture(output func(call int) domain.ExecutionResult) *fixture {
	f := &fixture{
		exec:        &fakeExecutor{output: output},
		submissions: &fakeSubmissions{},
		users:       &fakeUsers{points: map[uuid.UUID]int{}},
		stats:       &fakeStats{},
		leaderboard: &fakeLeaderboard{},
		publisher:   &fakePublisher{},
	}
	problems := &fakeProblems{problems: map[string]*domain.Problem{
		"two-sum": {
			ID:         "two-sum",
			Title:      "Two Sum",
			Difficulty: domain.DifficultyEasy,
			TestCases: []domain.TestCase{
				{Input: "[2,7,11,15]\n9", ExpectedOutput: "[0,1]"},
			},
		},
		"empty": {ID: "empty", Difficulty: domain.DifficultyHard},
	}}
	logger := logging.NewNopLogger()
	judgeSvc := judge.NewJudgeService(f.exec, &config.JudgeConfig{BaselineRuntimeMs: 1000, DeadlineFactor: 2}, logger)

	f.svc = submission.NewSubmissionService(submission.Dependencies{
		ProblemRepo:    problems,
		SubmissionRepo: f.submissions,
		UserPort:       f.users,
		Judge:          judgeSvc,
		Stats:          f.stats,
		Leaderboard:    f.leaderboard,
		Publisher:      f.publisher,
		Logger:         logger,
		RecentLimit:    10,
	})
	return f
}

func succeed(out string) func(int) domain.ExecutionResult {
	return func(int) domain.ExecutionResult {
		return domain.ExecutionResult{Succeeded: true, Stdout: out}
	}
}

func TestSubmitAccepted(t *testing.T) {
	f := newFixture(succeed("[0,1]\n"))
	userID := uuid.New()

	res, err := f.svc.Submit(context.Background(), userID, "two-sum", "JavaScript", twoSumJS)
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictAccepted, res.Verdict)
	assert.Equal(t, 1, res.PassedTests)
	assert.Equal(t, 1, res.TotalTests)
	assert.Equal(t, 12, res.PointsEarned)

	assert.Equal(t, 12, f.users.points[userID])
	require.Len(t, f.stats.solves, 1)
	assert.Equal(t, solve{userID, "two-sum", domain.DifficultyEasy}, f.stats.solves[0])
	assert.Equal(t, 1, f.leaderboard.invalidations)

	require.Len(t, f.submissions.created, 1)
	stored := f.submissions.created[0]
	assert.Equal(t, res.SubmissionID, stored.ID)
	assert.Equal(t, twoSumJS, stored.Code)
	assert.Equal(t, domain.LanguageJavaScript, stored.Language)
	assert.Equal(t, 12, stored.PointsEarned)

	require.Len(t, f.publisher.events, 1)
	assert.Equal(t, stored.ID, f.publisher.events[0].SubmissionID)
	assert.Equal(t, domain.VerdictAccepted, f.publisher.events[0].Verdict)
}

func TestSubmitWrongAnswer(t *testing.T) {
	f := newFixture(succeed("[1,0]\n"))
	userID := uuid.New()

	res, err := f.svc.Submit(context.Background(), userID, "two-sum", "javascript", twoSumJS)
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictWrongAnswer, res.Verdict)
	assert.Equal(t, 0, res.PointsEarned)
	assert.Equal(t, judge.MsgWrongAnswer, res.TestResults[0].ErrorMessage())
	assert.Empty(t, f.users.points)
	assert.Empty(t, f.stats.solves)
	assert.Zero(t, f.leaderboard.invalidations)
	assert.Len(t, f.submissions.created, 1)
	assert.Len(t, f.publisher.events, 1)
}

func TestSubmitRuntimeError(t *testing.T) {
	f := newFixture(func(int) domain.ExecutionResult {
		msg := "SyntaxError: Unexpected token"
		return domain.ExecutionResult{Succeeded: false, Stderr: &msg}
	})

	res, err := f.svc.Submit(context.Background(), uuid.New(), "two-sum", "javascript", twoSumJS)
	require.NoError(t, err)

	assert.Equal(t, domain.VerdictRuntimeError, res.Verdict)
	assert.Equal(t, "SyntaxError: Unexpected token", res.TestResults[0].ErrorMessage())
	assert.Equal(t, 0, res.PointsEarned)
}

func TestSubmitValidation(t *testing.T) {
	f := newFixture(succeed("[0,1]"))
	ctx := context.Background()
	userID := uuid.New()

	_, err := f.svc.Submit(ctx, userID, "two-sum", "javascript", "   ")
	assert.ErrorIs(t, err, errs.ErrCodeRequired)

	_, err = f.svc.Submit(ctx, userID, "two-sum", "", twoSumJS)
	assert.ErrorIs(t, err, errs.ErrLanguageRequired)

	_, err = f.svc.Submit(ctx, userID, "two-sum", "cobol", twoSumJS)
	assert.ErrorIs(t, err, errs.ErrUnsupportedLanguage)

	_, err = f.svc.Submit(ctx, userID, "missing", "javascript", twoSumJS)
	assert.ErrorIs(t, err, errs.ErrProblemNotFound)

	_, err = f.svc.Submit(ctx, userID, "empty", "javascript", twoSumJS)
	assert.ErrorIs(t, err, errs.ErrNoTestCases)

	assert.Zero(t, f.exec.calls)
	assert.Empty(t, f.submissions.created)
}

func TestSubmitKeepsVerdictWhenAwardFails(t *testing.T) {
	f := newFixture(succeed("[0,1]"))
	f.users.err = errors.New("db down")
	f.publisher.err = errors.New("nats down")

	res, err := f.svc.Submit(context.Background(), uuid.New(), "two-sum", "javascript", twoSumJS)
	require.NoError(t, err)
	assert.Equal(t, domain.VerdictAccepted, res.Verdict)
	assert.Len(t, f.submissions.created, 1)
}

func TestSubmitPersistFailure(t *testing.T) {
	f := newFixture(succeed("[0,1]"))
	f.submissions.err = errors.New("db down")

	_, err := f.svc.Submit(context.Background(), uuid.New(), "two-sum", "javascript", twoSumJS)
	assert.ErrorContains(t, err, "failed to save submission")
	assert.Empty(t, f.publisher.events)
}

func TestListAndGet(t *testing.T) {
	f := newFixture(succeed("[0,1]"))
	ctx := context.Background()
	userID := uuid.New()

	var last *domain.SubmissionResult
	for i := 0; i < 12; i++ {
		res, err := f.svc.Submit(ctx, userID, "two-sum", "javascript", twoSumJS)
		require.NoError(t, err)
		last = res
	}

	list, err := f.svc.ListForProblem(ctx, userID, "two-sum")
	require.NoError(t, err)
	require.Len(t, list, 10)
	assert.Equal(t, last.SubmissionID, list[0].ID)
	for _, s := range list {
		assert.Empty(t, s.Code)
	}

	got, err := f.svc.Get(ctx, userID, last.SubmissionID)
	require.NoError(t, err)
	assert.Equal(t, twoSumJS, got.Code)

	_, err = f.svc.Get(ctx, uuid.New(), last.SubmissionID)
	assert.ErrorIs(t, err, errs.ErrSubmissionNotFound)
}
