package judge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codearena.net/internal/core/services/judge"
	"gitlab.com/codearena.net/internal/domain"
)

func TestScoreZeroUnlessAccepted(t *testing.T) {
	verdicts := []domain.Verdict{
		domain.VerdictWrongAnswer,
		domain.VerdictRuntimeError,
		domain.VerdictTimeLimitExceeded,
		domain.VerdictCompilationError,
	}
	for _, d := range []domain.Difficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard} {
		for _, v := range verdicts {
			assert.Zero(t, judge.Score(d, v, 1, 1000), "%s %s", d, v)
		}
	}
}

func TestScoreBonusThreshold(t *testing.T) {
	assert.Equal(t, 12, judge.Score(domain.DifficultyEasy, domain.VerdictAccepted, 40, 100))
	assert.Equal(t, 10, judge.Score(domain.DifficultyEasy, domain.VerdictAccepted, 60, 100))
	assert.Equal(t, 10, judge.Score(domain.DifficultyEasy, domain.VerdictAccepted, 50, 100))
	assert.Equal(t, 30, judge.Score(domain.DifficultyMedium, domain.VerdictAccepted, 10, 1000))
	assert.Equal(t, 25, judge.Score(domain.DifficultyMedium, domain.VerdictAccepted, 900, 1000))
	assert.Equal(t, 60, judge.Score(domain.DifficultyHard, domain.VerdictAccepted, 0, 1000))
}

func TestScoreUnknownDifficulty(t *testing.T) {
	assert.Zero(t, judge.Score(domain.Difficulty("Impossible"), domain.VerdictAccepted, 1, 1000))
}
