package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// BookmarkRepository keeps at most one bookmark per user and problem
type BookmarkRepository interface {
	// Get returns nil, nil when the problem is not bookmarked
	Get(ctx context.Context, userID uuid.UUID, problemID string) (*domain.Bookmark, error)

	// List returns the user's bookmarks, oldest first
	List(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error)

	// Create fails with errs.ErrBookmarkExists when the problem is already bookmarked
	Create(ctx context.Context, bookmark *domain.Bookmark) error

	// Update overwrites notes and tags
	Update(ctx context.Context, bookmark *domain.Bookmark) error

	// Delete removes the bookmark. Deleting a missing bookmark is not an error.
	Delete(ctx context.Context, userID uuid.UUID, problemID string) error
}
