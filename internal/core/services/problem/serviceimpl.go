package problem

import (
	"context"
	"fmt"
	"time"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/problemfile"
	"gitlab.com/codearena.net/internal/static/errs"
)

var (
	_ IProblemService      = (*ProblemService)(nil)
	_ IProblemAdminService = (*ProblemService)(nil)
)

type ProblemService struct {
	problemRepo secondary.ProblemRepository
	logger      primary.Logger
}

func NewProblemService(problemRepo secondary.ProblemRepository, logger primary.Logger) *ProblemService {
	return &ProblemService{
		problemRepo: problemRepo,
		logger:      logger,
	}
}

func (s *ProblemService) ListProblems(ctx context.Context) ([]*domain.Problem, error) {
	problems, err := s.problemRepo.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	public := make([]*domain.Problem, 0, len(problems))
	for _, p := range problems {
		public = append(public, p.Public())
	}
	return public, nil
}

func (s *ProblemService) GetProblem(ctx context.Context, slug string) (*domain.Problem, error) {
	p, err := s.problemRepo.GetBySlug(ctx, slug)
	if err != nil {
		s.logger.Error("Failed to get problem", "problemId", slug, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if p == nil {
		return nil, errs.ErrProblemNotFound
	}
	return p.Public(), nil
}

func (s *ProblemService) CreateProblem(ctx context.Context, p *domain.Problem) (*domain.Problem, error) {
	if err := problemfile.Validate(p); err != nil {
		return nil, err
	}

	existing, err := s.problemRepo.GetBySlug(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if existing != nil {
		return nil, errs.ErrProblemExists
	}

	p.CreatedAt = time.Time{}
	if err := s.problemRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("Problem created", "problemId", p.ID)
	return p, nil
}

func (s *ProblemService) UpdateProblem(ctx context.Context, slug string, fn func(p *domain.Problem) error) (*domain.Problem, error) {
	p, err := s.problemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if p == nil {
		return nil, errs.ErrProblemNotFound
	}

	if err := fn(p); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidProblem, err)
	}
	p.ID = slug
	if err := problemfile.Validate(p); err != nil {
		return nil, err
	}

	if err := s.problemRepo.Upsert(ctx, p); err != nil {
		return nil, err
	}
	s.logger.Info("Problem updated", "problemId", slug)
	return p, nil
}

func (s *ProblemService) DeleteProblem(ctx context.Context, slug string) (*domain.Problem, error) {
	p, err := s.problemRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if p == nil {
		return nil, errs.ErrProblemNotFound
	}

	deleted, err := s.problemRepo.Delete(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, errs.ErrProblemNotFound
	}
	s.logger.Info("Problem deleted", "problemId", slug)
	return p, nil
}
