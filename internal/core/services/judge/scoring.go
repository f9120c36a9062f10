package judge

import (
	"math"

	"gitlab.com/codearena.net/internal/domain"
)

const (
	speedBonusRate      = 0.2
	speedBonusThreshold = 0.5
)

// Score returns the points a verdict earns. Only accepted submissions score;
// a run faster than half the baseline earns a 20% bonus.
func Score(difficulty domain.Difficulty, verdict domain.Verdict, runtimeMs, baselineRuntimeMs int64) int {
	if verdict != domain.VerdictAccepted {
		return 0
	}

	base := difficulty.BasePoints()
	points := base
	if float64(runtimeMs) < speedBonusThreshold*float64(baselineRuntimeMs) {
		points += int(math.Round(float64(base) * speedBonusRate))
	}
	return points
}

// Score applies the configured baseline runtime
func (s *JudgeService) Score(difficulty domain.Difficulty, outcome domain.JudgeOutcome) int {
	return Score(difficulty, outcome.Verdict, outcome.AverageRuntimeMs, s.baselineRuntimeMs)
}
