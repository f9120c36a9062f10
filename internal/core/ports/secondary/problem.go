package secondary

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

type ProblemRepository interface {
	// GetBySlug returns nil, nil when the problem does not exist
	GetBySlug(ctx context.Context, slug string) (*domain.Problem, error)

	// List returns all problems, newest first
	List(ctx context.Context) ([]*domain.Problem, error)

	// Upsert inserts or replaces a problem by slug
	Upsert(ctx context.Context, problem *domain.Problem) error

	// Delete removes a problem and reports whether it existed
	Delete(ctx context.Context, slug string) (bool, error)
}
