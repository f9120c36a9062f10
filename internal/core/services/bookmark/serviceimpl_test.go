package bookmark_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codearena.net/internal/adapter/logging"
	"gitlab.com/codearena.net/internal/core/services/bookmark"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

type bookmarkKey struct {
	userID    uuid.UUID
	problemID string
}

type fakeBookmarks struct {
	rows  map[bookmarkKey]*domain.Bookmark
	order []bookmarkKey
	tick  time.Time
}

func newFakeBookmarks() *fakeBookmarks {
	return &fakeBookmarks{
		rows: map[bookmarkKey]*domain.Bookmark{},
		tick: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeBookmarks) Get(ctx context.Context, userID uuid.UUID, problemID string) (*domain.Bookmark, error) {
	b, ok := f.rows[bookmarkKey{userID, problemID}]
	if !ok {
		return nil, nil
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBookmarks) List(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	out := []*domain.Bookmark{}
	for _, key := range f.order {
		if b, ok := f.rows[key]; ok && key.userID == userID {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBookmarks) Create(ctx context.Context, b *domain.Bookmark) error {
	key := bookmarkKey{b.UserID, b.ProblemID}
	if _, ok := f.rows[key]; ok {
		return errs.ErrBookmarkExists
	}
	f.tick = f.tick.Add(time.Minute)
	b.CreatedAt = f.tick
	cp := *b
	f.rows[key] = &cp
	f.order = append(f.order, key)
	return nil
}

func (f *fakeBookmarks) Update(ctx context.Context, b *domain.Bookmark) error {
	key := bookmarkKey{b.UserID, b.ProblemID}
	if _, ok := f.rows[key]; !ok {
		return errs.ErrBookmarkNotFound
	}
	cp := *b
	f.rows[key] = &cp
	return nil
}

func (f *fakeBookmarks) Delete(ctx context.Context, userID uuid.UUID, problemID string) error {
	key := bookmarkKey{userID, problemID}
	if _, ok := f.rows[key]; !ok {
		return nil
	}
	delete(f.rows, key)
	for i, k := range f.order {
		if k == key {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeProblems struct {
	problems map[string]*domain.Problem
	err      error
}

func (f *fakeProblems) GetBySlug(ctx context.Context, slug string) (*domain.Problem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.problems[slug], nil
}

func (f *fakeProblems) List(ctx context.Context) ([]*domain.Problem, error) {
	return nil, nil
}

func (f *fakeProblems) Upsert(ctx context.Context, p *domain.Problem) error {
	return nil
}

func (f *fakeProblems) Delete(ctx context.Context, slug string) (bool, error) {
	_, ok := f.problems[slug]
	delete(f.problems, slug)
	return ok, nil
}

func newService() (*bookmark.BookmarkService, *fakeBookmarks, *fakeProblems) {
	bookmarks := newFakeBookmarks()
	problems := &fakeProblems{problems: map[string]*domain.Problem{
		"two-sum": {
			ID:         "two-sum",
			Title:      "Two Sum",
			Difficulty: domain.DifficultyEasy,
			TestCases: []domain.TestCase{
				{Input: "[2,7,11,15], 9", ExpectedOutput: "[0,1]"},
				{Input: "[3,3], 6", ExpectedOutput: "[0,1]", Hidden: true},
			},
		},
		"reverse-string": {ID: "reverse-string", Title: "Reverse String", Difficulty: domain.DifficultyEasy},
	}}
	return bookmark.NewBookmarkService(bookmarks, problems, logging.NewNopLogger()), bookmarks, problems
}

func TestAddBookmark(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService()
	userID := uuid.New()

	list, err := svc.Add(ctx, userID, "two-sum", "use a map", []string{" array ", "", "array", "hash"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "two-sum", list[0].ProblemID)
	assert.Equal(t, "use a map", list[0].Notes)
	assert.Equal(t, []string{"array", "hash"}, list[0].Tags)

	list, err = svc.Add(ctx, userID, "reverse-string", "", nil)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "reverse-string", list[1].ProblemID)
	assert.Equal(t, []string{}, list[1].Tags)
}

func TestAddBookmarkErrors(t *testing.T) {
	ctx := context.Background()
	svc, _, problems := newService()
	userID := uuid.New()

	_, err := svc.Add(ctx, userID, "missing", "", nil)
	assert.ErrorIs(t, err, errs.ErrProblemNotFound)

	_, err = svc.Add(ctx, userID, "two-sum", "", nil)
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "two-sum", "again", nil)
	assert.ErrorIs(t, err, errs.ErrBookmarkExists)

	// another user may bookmark the same problem
	_, err = svc.Add(ctx, uuid.New(), "two-sum", "", nil)
	assert.NoError(t, err)

	problems.err = errors.New("connection reset")
	_, err = svc.Add(ctx, userID, "reverse-string", "", nil)
	assert.ErrorContains(t, err, "connection reset")
}

func TestRemoveBookmark(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newService()
	userID := uuid.New()

	_, err := svc.Add(ctx, userID, "two-sum", "", nil)
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "reverse-string", "", nil)
	require.NoError(t, err)

	left, err := svc.Remove(ctx, userID, "two-sum")
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "reverse-string", left[0].ProblemID)

	// removing twice is fine
	left, err = svc.Remove(ctx, userID, "two-sum")
	require.NoError(t, err)
	assert.Len(t, left, 1)

	ok, err := svc.IsBookmarked(ctx, userID, "two-sum")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = svc.IsBookmarked(ctx, userID, "reverse-string")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestListBookmarksWithProblems(t *testing.T) {
	ctx := context.Background()
	svc, _, problems := newService()
	userID := uuid.New()

	_, err := svc.Add(ctx, userID, "two-sum", "", nil)
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, "reverse-string", "", nil)
	require.NoError(t, err)
	_, err = problems.Delete(ctx, "reverse-string")
	require.NoError(t, err)

	list, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NotNil(t, list[0].Problem)
	assert.Equal(t, "Two Sum", list[0].Problem.Title)
	// hidden cases never leave the service
	assert.Len(t, list[0].Problem.TestCases, 1)
	assert.Len(t, problems.problems["two-sum"].TestCases, 2)

	assert.Equal(t, "reverse-string", list[1].ProblemID)
	assert.Nil(t, list[1].Problem)

	empty, err := svc.List(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestUpdateBookmark(t *testing.T) {
	ctx := context.Background()
	svc, bookmarks, _ := newService()
	userID := uuid.New()

	_, err := svc.Add(ctx, userID, "two-sum", "first note", []string{"array"})
	require.NoError(t, err)

	notes := "second note"
	b, err := svc.Update(ctx, userID, "two-sum", domain.BookmarkUpdate{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, "second note", b.Notes)
	assert.Equal(t, []string{"array"}, b.Tags)

	tags := []string{"hash", " hash ", "revisit"}
	b, err = svc.Update(ctx, userID, "two-sum", domain.BookmarkUpdate{Tags: &tags})
	require.NoError(t, err)
	assert.Equal(t, "second note", b.Notes)
	assert.Equal(t, []string{"hash", "revisit"}, b.Tags)

	stored := bookmarks.rows[bookmarkKey{userID, "two-sum"}]
	assert.Equal(t, []string{"hash", "revisit"}, stored.Tags)

	_, err = svc.Update(ctx, userID, "reverse-string", domain.BookmarkUpdate{Notes: &notes})
	assert.ErrorIs(t, err, errs.ErrBookmarkNotFound)
}
