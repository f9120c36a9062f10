package submission

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// ISubmissionService judges submissions and serves submission history
type ISubmissionService interface {
	// Submit judges code against every test case of a problem, awards points
	// on acceptance and stores the submission
	Submit(ctx context.Context, userID uuid.UUID, problemID string, language string, code string) (*domain.SubmissionResult, error)

	// ListForProblem returns the user's most recent submissions without source code
	ListForProblem(ctx context.Context, userID uuid.UUID, problemID string) ([]*domain.Submission, error)

	// Get returns one of the user's submissions
	Get(ctx context.Context, userID uuid.UUID, submissionID uuid.UUID) (*domain.Submission, error)
}
