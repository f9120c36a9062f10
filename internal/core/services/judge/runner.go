package judge

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
)

// Case error messages. The batch judge classifies failed cases by them.
const (
	MsgWrongAnswer        = "Wrong Answer"
	MsgTimeLimitExceeded  = "Time Limit Exceeded"
	MsgExecutionFailed    = "Execution failed"
	MsgEntryPointNotFound = "Compilation Error: could not locate the function to call"
)

// Runner executes a submission against one test case
type Runner struct {
	executor       secondary.CodeExecutor
	wrapper        *Wrapper
	logger         primary.Logger
	deadlineFactor float64
	strict         bool
	clock          func() time.Time
}

// RunnerOption customizes a Runner
type RunnerOption func(*Runner)

// WithClock replaces the wall clock used to time sandbox calls
func WithClock(clock func() time.Time) RunnerOption {
	return func(r *Runner) {
		if clock != nil {
			r.clock = clock
		}
	}
}

// WithDeadlineFactor bounds every sandbox call at timeLimit * factor. A factor
// below 1 disables the bound.
func WithDeadlineFactor(factor float64) RunnerOption {
	return func(r *Runner) {
		r.deadlineFactor = factor
	}
}

// WithStrictEntryPoint makes an unresolvable entry point fail the case
// instead of running the source unmodified.
func WithStrictEntryPoint(strict bool) RunnerOption {
	return func(r *Runner) {
		r.strict = strict
	}
}

func NewRunner(executor secondary.CodeExecutor, logger primary.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		executor: executor,
		wrapper:  NewWrapper(),
		logger:   logger,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunCase wraps the code for the case input, executes it and classifies the
// outcome. It never fails: every problem is reported in the returned result.
// TestNumber is left for the caller to fill in.
func (r *Runner) RunCase(ctx context.Context, language domain.Language, code string, tc domain.TestCase, timeLimitMs int64) (result domain.TestCaseResult) {
	result = domain.TestCaseResult{
		Input:          tc.Input,
		ExpectedOutput: tc.ExpectedOutput,
	}

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("Test case execution panicked", "language", language, "panic", rec)
			msg := fmt.Sprint(rec)
			result.Passed = false
			result.ActualOutput = ""
			result.Error = &msg
		}
	}()

	source, status := r.wrapper.Wrap(language, code, tc.Input)
	if status == WrapUnresolved {
		r.logger.Warn("Could not locate entry point, running source as is", "language", language)
		if r.strict {
			return failed(result, "", MsgEntryPointNotFound)
		}
	}

	execCtx := ctx
	if r.deadlineFactor >= 1 && timeLimitMs > 0 {
		deadline := time.Duration(float64(timeLimitMs)*r.deadlineFactor) * time.Millisecond
		var cancel context.CancelFunc
		execCtx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}

	req := domain.ExecutionRequest{
		Language:   language,
		SourceCode: source,
	}
	// programs that bring their own entry point read the case input on stdin
	if status == WrapPassThrough {
		req.StdinArgs = tc.Input
	}

	start := r.clock()
	exec := r.executor.Execute(execCtx, req)
	result.RuntimeMs = r.clock().Sub(start).Milliseconds()

	if exec.TimedOut {
		return failed(result, exec.Stdout, MsgTimeLimitExceeded)
	}

	if !exec.Succeeded {
		actual := MsgExecutionFailed
		if exec.Stderr != nil && *exec.Stderr != "" {
			actual = *exec.Stderr
		}
		return failed(result, actual, actual)
	}

	// only a successful run can exceed the time limit
	if timeLimitMs > 0 && result.RuntimeMs > timeLimitMs {
		return failed(result, exec.Stdout, MsgTimeLimitExceeded)
	}

	if !OutputsMatch(exec.Stdout, tc.ExpectedOutput) {
		return failed(result, exec.Stdout, MsgWrongAnswer)
	}

	result.ActualOutput = exec.Stdout
	result.Passed = true
	return result
}

func failed(result domain.TestCaseResult, actual, msg string) domain.TestCaseResult {
	result.Passed = false
	result.ActualOutput = actual
	result.Error = &msg
	return result
}
