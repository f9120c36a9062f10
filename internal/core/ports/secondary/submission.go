package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

type SubmissionRepository interface {
	// Create stores a new submission. Submissions are never updated.
	Create(ctx context.Context, submission *domain.Submission) error

	// ListRecent returns the latest submissions of a user for a problem, without source code
	ListRecent(ctx context.Context, userID uuid.UUID, problemID string, limit int) ([]*domain.Submission, error)

	// Get returns nil, nil when no submission with the id belongs to the user
	Get(ctx context.Context, userID uuid.UUID, submissionID uuid.UUID) (*domain.Submission, error)
}

// SubmissionEventPublisher broadcasts judged submissions
type SubmissionEventPublisher interface {
	PublishJudged(ctx context.Context, event domain.SubmissionJudgedEvent) error
}
