package secondary

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type CodeExecutor interface {
	// Execute runs one program in the sandbox. Failures are reported in the
	// result, never as an error.
	Execute(ctx context.Context, req domain.ExecutionRequest) domain.ExecutionResult

	// Supports reports whether the sandbox has a runtime for the language
	Supports(language domain.Language) bool
}
