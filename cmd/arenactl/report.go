package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gitlab.com/codearena.net/internal/domain"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.FgHiBlack)
)

func verdictColor(v domain.Verdict) *color.Color {
	switch v {
	case domain.VerdictAccepted:
		return passColor
	case domain.VerdictTimeLimitExceeded:
		return color.New(color.FgYellow, color.Bold)
	}
	return failColor
}

func printOutcome(w io.Writer, problem *domain.Problem, outcome domain.JudgeOutcome, points int) {
	fmt.Fprintf(w, "== %s (%s) ==\n", problem.Title, problem.Difficulty)
	for _, r := range outcome.TestResults {
		if r.Passed {
			fmt.Fprintf(w, "%s test %d %s\n", passColor.Sprint("PASS"), r.TestNumber, dimColor.Sprintf("%dms", r.RuntimeMs))
			continue
		}
		fmt.Fprintf(w, "%s test %d %s\n", failColor.Sprint("FAIL"), r.TestNumber, dimColor.Sprintf("%dms", r.RuntimeMs))
		fmt.Fprintf(w, "  input:    %s\n", indent(r.Input))
		fmt.Fprintf(w, "  expected: %s\n", indent(r.ExpectedOutput))
		fmt.Fprintf(w, "  actual:   %s\n", indent(r.ActualOutput))
		if msg := r.ErrorMessage(); msg != "" {
			fmt.Fprintf(w, "  error:    %s\n", indent(msg))
		}
	}
	fmt.Fprintf(w, "== %s %d/%d passed, avg %dms, %d points ==\n",
		verdictColor(outcome.Verdict).Sprint(outcome.Verdict),
		outcome.PassedTests, outcome.TotalTests, outcome.AverageRuntimeMs, points)
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n            ")
}
