package judge_test

import (
	"context"
	"sync"
	"time"

	"gitlab.com/codearena.net/internal/domain"
)

type fakeExecutor struct {
	mu       sync.Mutex
	requests []domain.ExecutionRequest
	respond  func(call int, req domain.ExecutionRequest) domain.ExecutionResult
}

func (f *fakeExecutor) Execute(ctx context.Context, req domain.ExecutionRequest) domain.ExecutionResult {
	f.mu.Lock()
	call := len(f.requests)
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.respond(call, req)
}

func (f *fakeExecutor) Supports(language domain.Language) bool {
	return language == domain.LanguageJavaScript || language == domain.LanguagePython || language == domain.LanguageJava
}

func stdout(out string) func(int, domain.ExecutionRequest) domain.ExecutionResult {
	return func(int, domain.ExecutionRequest) domain.ExecutionResult {
		return domain.ExecutionResult{Succeeded: true, Stdout: out}
	}
}

func stderr(msg string) domain.ExecutionResult {
	return domain.ExecutionResult{Succeeded: false, Stderr: &msg}
}

// steppingClock advances by the next duration in steps on every second
// reading, so each sandbox call appears to take steps[i].
func steppingClock(steps ...time.Duration) func() time.Time {
	var mu sync.Mutex
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	reads := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		if reads%2 == 1 && len(steps) > 0 {
			now = now.Add(steps[(reads/2)%len(steps)])
		}
		reads++
		return now
	}
}

func strPtr(s string) *string {
	return &s
}
