package judge

import (
	"context"

	"gitlab.com/codearena.net/internal/config"
	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

// IJudgeService judges code against test cases and scores the outcome
type IJudgeService interface {
	// JudgeCases runs the code against every case and derives a verdict
	JudgeCases(ctx context.Context, language domain.Language, code string, cases []domain.TestCase, timeLimitMs int64) (*domain.JudgeOutcome, error)

	// Score computes the points earned for an outcome on a problem of the given difficulty
	Score(difficulty domain.Difficulty, outcome domain.JudgeOutcome) int

	// Supports reports whether the language can be executed
	Supports(language domain.Language) bool
}

var _ IJudgeService = (*JudgeService)(nil)

type JudgeService struct {
	executor          secondary.CodeExecutor
	runner            *Runner
	logger            primary.Logger
	baselineRuntimeMs int64
}

// NewJudgeService creates a judge on top of a sandbox executor
func NewJudgeService(executor secondary.CodeExecutor, cfg *config.JudgeConfig, logger primary.Logger, opts ...RunnerOption) *JudgeService {
	runnerOpts := append([]RunnerOption{
		WithDeadlineFactor(cfg.DeadlineFactor),
		WithStrictEntryPoint(cfg.StrictEntryPoint),
	}, opts...)

	return &JudgeService{
		executor:          executor,
		runner:            NewRunner(executor, logger, runnerOpts...),
		logger:            logger,
		baselineRuntimeMs: cfg.BaselineRuntimeMs,
	}
}

func (s *JudgeService) Supports(language domain.Language) bool {
	return s.executor.Supports(language)
}
