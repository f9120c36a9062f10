package bookmark

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

var _ IBookmarkService = (*BookmarkService)(nil)

type BookmarkService struct {
	bookmarkRepo secondary.BookmarkRepository
	problemRepo  secondary.ProblemRepository
	logger       primary.Logger
}

func NewBookmarkService(bookmarkRepo secondary.BookmarkRepository, problemRepo secondary.ProblemRepository, logger primary.Logger) *BookmarkService {
	return &BookmarkService{
		bookmarkRepo: bookmarkRepo,
		problemRepo:  problemRepo,
		logger:       logger,
	}
}

func (s *BookmarkService) Add(ctx context.Context, userID uuid.UUID, problemID string, notes string, tags []string) ([]*domain.Bookmark, error) {
	p, err := s.problemRepo.GetBySlug(ctx, problemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}
	if p == nil {
		return nil, errs.ErrProblemNotFound
	}

	err = s.bookmarkRepo.Create(ctx, &domain.Bookmark{
		UserID:    userID,
		ProblemID: problemID,
		Notes:     notes,
		Tags:      cleanTags(tags),
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug("Problem bookmarked", "userId", userID, "problemId", problemID)

	return s.bookmarkRepo.List(ctx, userID)
}

func (s *BookmarkService) Remove(ctx context.Context, userID uuid.UUID, problemID string) ([]*domain.Bookmark, error) {
	if err := s.bookmarkRepo.Delete(ctx, userID, problemID); err != nil {
		return nil, err
	}
	return s.bookmarkRepo.List(ctx, userID)
}

func (s *BookmarkService) List(ctx context.Context, userID uuid.UUID) ([]*domain.BookmarkedProblem, error) {
	bookmarks, err := s.bookmarkRepo.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.BookmarkedProblem, 0, len(bookmarks))
	for _, b := range bookmarks {
		p, err := s.problemRepo.GetBySlug(ctx, b.ProblemID)
		if err != nil {
			s.logger.Error("Failed to load bookmarked problem", "problemId", b.ProblemID, "error", err)
			return nil, fmt.Errorf("failed to load bookmarked problem: %w", err)
		}
		entry := &domain.BookmarkedProblem{Bookmark: *b}
		if p != nil {
			entry.Problem = p.Public()
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *BookmarkService) Update(ctx context.Context, userID uuid.UUID, problemID string, update domain.BookmarkUpdate) (*domain.Bookmark, error) {
	b, err := s.bookmarkRepo.Get(ctx, userID, problemID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, errs.ErrBookmarkNotFound
	}

	if update.Notes != nil {
		b.Notes = *update.Notes
	}
	if update.Tags != nil {
		b.Tags = cleanTags(*update.Tags)
	}
	if err := s.bookmarkRepo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookmarkService) IsBookmarked(ctx context.Context, userID uuid.UUID, problemID string) (bool, error) {
	b, err := s.bookmarkRepo.Get(ctx, userID, problemID)
	if err != nil {
		return false, err
	}
	return b != nil, nil
}

// cleanTags trims tags and drops empty and repeated ones, keeping order
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
