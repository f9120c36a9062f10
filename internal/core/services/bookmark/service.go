package bookmark

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/codearena.net/internal/domain"
)

// IBookmarkService keeps the problems a user saved for later
type IBookmarkService interface {
	// Add bookmarks an existing problem and returns all of the user's bookmarks
	Add(ctx context.Context, userID uuid.UUID, problemID string, notes string, tags []string) ([]*domain.Bookmark, error)

	// Remove drops a bookmark and returns the ones left
	Remove(ctx context.Context, userID uuid.UUID, problemID string) ([]*domain.Bookmark, error)

	// List returns the bookmarks with the public view of each problem
	List(ctx context.Context, userID uuid.UUID) ([]*domain.BookmarkedProblem, error)

	// Update changes notes and tags of an existing bookmark
	Update(ctx context.Context, userID uuid.UUID, problemID string, update domain.BookmarkUpdate) (*domain.Bookmark, error)

	IsBookmarked(ctx context.Context, userID uuid.UUID, problemID string) (bool, error)
}
