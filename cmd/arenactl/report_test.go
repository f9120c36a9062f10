package main

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"gitlab.com/codearena.net/internal/domain"
)

func TestPrintOutcome(t *testing.T) {
	color.NoColor = true

	errMsg := "Wrong Answer"
	outcome := domain.JudgeOutcome{
		Verdict:          domain.VerdictWrongAnswer,
		TotalTests:       2,
		PassedTests:      1,
		AverageRuntimeMs: 15,
		TestResults: []domain.TestCaseResult{
			{TestNumber: 1, Passed: true, RuntimeMs: 10},
			{TestNumber: 2, Input: "[3,2,4]\n6", ExpectedOutput: "[1,2]", ActualOutput: "[0,0]", RuntimeMs: 20, Error: &errMsg},
		},
	}

	var buf bytes.Buffer
	printOutcome(&buf, &domain.Problem{Title: "Two Sum", Difficulty: domain.DifficultyEasy}, outcome, 0)

	out := buf.String()
	assert.Contains(t, out, "== Two Sum (Easy) ==")
	assert.Contains(t, out, "PASS test 1 10ms")
	assert.Contains(t, out, "FAIL test 2 20ms")
	assert.Contains(t, out, "  input:    [3,2,4]\n            6\n")
	assert.Contains(t, out, "  error:    Wrong Answer")
	assert.Contains(t, out, "== Wrong Answer 1/2 passed, avg 15ms, 0 points ==")
}
