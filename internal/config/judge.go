package config

import (
	"os"
	"strconv"
)

type JudgeConfig struct {
	// BaselineRuntimeMs stands in for the historical average runtime of a problem
	BaselineRuntimeMs int64
	// DeadlineFactor bounds a sandbox call at timeLimit * DeadlineFactor
	DeadlineFactor    float64
	// StrictEntryPoint reports an unresolvable entry point as a compilation error
	StrictEntryPoint  bool

	RecentSubmissions int
}

func NewJudgeConfig() *JudgeConfig {
	baseline, err := strconv.ParseInt(os.Getenv("JUDGE_BASELINE_RUNTIME_MS"), 10, 64)
	if err != nil || baseline <= 0 {
		baseline = 1000
	}
	factor, err := strconv.ParseFloat(os.Getenv("JUDGE_DEADLINE_FACTOR"), 64)
	if err != nil || factor < 1 {
		factor = 2
	}
	recent, err := strconv.Atoi(os.Getenv("JUDGE_RECENT_SUBMISSIONS"))
	if err != nil || recent <= 0 {
		recent = 10
	}
	return &JudgeConfig{
		BaselineRuntimeMs: baseline,
		DeadlineFactor:    factor,
		StrictEntryPoint:  os.Getenv("JUDGE_STRICT_ENTRY_POINT") == "true",
		RecentSubmissions: recent,
	}
}
