package domain

import (
	"time"

	"github.com/google/uuid"
)

// Bookmark is a problem a user saved with optional notes and tags
type Bookmark struct {
	UserID    uuid.UUID `json:"-"`
	ProblemID string    `json:"problemId"`
	Notes     string    `json:"notes"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookmarkedProblem pairs a bookmark with its problem. Problem is nil when
// the problem was deleted after it was bookmarked.
type BookmarkedProblem struct {
	Bookmark
	Problem *Problem `json:"problem"`
}

// BookmarkUpdate holds the fields to change, nil fields are left alone
type BookmarkUpdate struct {
	Notes *string
	Tags  *[]string
}
