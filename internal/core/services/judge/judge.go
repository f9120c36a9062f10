package judge

import (
	"context"
	"math"

	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

// JudgeCases runs the code against every case in order and folds the
// results into one outcome. Cases run sequentially so results keep the
// order of the input.
func (s *JudgeService) JudgeCases(ctx context.Context, language domain.Language, code string, cases []domain.TestCase, timeLimitMs int64) (*domain.JudgeOutcome, error) {
	if len(cases) == 0 {
		return nil, errs.ErrNoTestCases
	}

	s.logger.Debug("Judging submission", "language", language, "cases", len(cases), "timeLimitMs", timeLimitMs)

	results := make([]domain.TestCaseResult, 0, len(cases))
	for i, tc := range cases {
		res := s.runner.RunCase(ctx, language, code, tc, timeLimitMs)
		res.TestNumber = i + 1
		results = append(results, res)
	}

	outcome := Aggregate(results)
	s.logger.Info("Submission judged",
		"language", language,
		"status", outcome.Verdict,
		"passed", outcome.PassedTests,
		"total", outcome.TotalTests)

	return &outcome, nil
}

// Aggregate folds per-case results into a judge outcome. It has no side
// effects and the verdict depends only on the results passed in.
func Aggregate(results []domain.TestCaseResult) domain.JudgeOutcome {
	passed := 0
	var totalRuntime int64
	for _, r := range results {
		if r.Passed {
			passed++
		}
		totalRuntime += r.RuntimeMs
	}

	var average int64
	if len(results) > 0 {
		average = int64(math.Round(float64(totalRuntime) / float64(len(results))))
	}

	return domain.JudgeOutcome{
		Verdict:          DeriveVerdict(results),
		TestResults:      results,
		TotalTests:       len(results),
		PassedTests:      passed,
		AverageRuntimeMs: average,
	}
}

// DeriveVerdict picks the first matching rule: all cases passed, an entry
// point could not be located, any case failed with an error other than a
// wrong answer or time limit, any case exceeded the time limit, otherwise a
// wrong answer.
func DeriveVerdict(results []domain.TestCaseResult) domain.Verdict {
	passed := 0
	var compile, runtime, timeout bool
	for _, r := range results {
		if r.Passed {
			passed++
			continue
		}
		switch msg := r.ErrorMessage(); {
		case r.Error == nil, msg == MsgWrongAnswer:
		case msg == MsgTimeLimitExceeded:
			timeout = true
		case msg == MsgEntryPointNotFound:
			compile = true
		default:
			runtime = true
		}
	}

	switch {
	case passed == len(results):
		return domain.VerdictAccepted
	case compile:
		return domain.VerdictCompilationError
	case runtime:
		return domain.VerdictRuntimeError
	case timeout:
		return domain.VerdictTimeLimitExceeded
	default:
		return domain.VerdictWrongAnswer
	}
}
