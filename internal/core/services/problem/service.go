package problem

import (
	"context"

	"gitlab.com/codearena.net/internal/domain"
)

// IProblemService serves the user facing problem catalog
type IProblemService interface {
	// ListProblems returns every problem without hidden test cases
	ListProblems(ctx context.Context) ([]*domain.Problem, error)

	// GetProblem returns one problem without hidden test cases
	GetProblem(ctx context.Context, slug string) (*domain.Problem, error)
}

// IProblemAdminService edits the catalog. Problems come back whole, hidden
// test cases included.
type IProblemAdminService interface {
	// CreateProblem validates and stores a new problem, an existing id is rejected
	CreateProblem(ctx context.Context, p *domain.Problem) (*domain.Problem, error)

	// UpdateProblem applies fn to the stored problem and saves the result.
	// The id in the path wins over any id fn sets.
	UpdateProblem(ctx context.Context, slug string, fn func(p *domain.Problem) error) (*domain.Problem, error)

	// DeleteProblem removes a problem and returns it
	DeleteProblem(ctx context.Context, slug string) (*domain.Problem, error)
}
