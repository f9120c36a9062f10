package bookmarkrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
	querybuilder "gitlab.com/codearena.net/internal/utils"
)

const table = "bookmarks"

var columns = []string{"user_id", "problem_id", "notes", "tags", "created_at"}

var _ secondary.BookmarkRepository = (*BookmarkRepository)(nil)

// BookmarkRepository stores bookmarks in PostgreSQL, tags live in a JSONB column
type BookmarkRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) *BookmarkRepository {
	return &BookmarkRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

type bookmarkRow struct {
	UserID    uuid.UUID `db:"user_id"`
	ProblemID string    `db:"problem_id"`
	Notes     string    `db:"notes"`
	Tags      []byte    `db:"tags"`
	CreatedAt time.Time `db:"created_at"`
}

func (r bookmarkRow) toDomain() (*domain.Bookmark, error) {
	tags := []string{}
	if len(r.Tags) > 0 {
		if err := json.Unmarshal(r.Tags, &tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bookmark tags: %w", err)
		}
	}
	return &domain.Bookmark{
		UserID:    r.UserID,
		ProblemID: r.ProblemID,
		Notes:     r.Notes,
		Tags:      tags,
		CreatedAt: r.CreatedAt,
	}, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("failed to marshal bookmark tags: %w", err)
	}
	return string(raw), nil
}

func (r *BookmarkRepository) Get(ctx context.Context, userID uuid.UUID, problemID string) (*domain.Bookmark, error) {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		And("problem_id = ?", problemID).
		Build()

	var row bookmarkRow
	if err := r.db.GetContext(ctx, &row, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get bookmark", "userId", userID, "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return row.toDomain()
}

func (r *BookmarkRepository) List(ctx context.Context, userID uuid.UUID) ([]*domain.Bookmark, error) {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		OrderBy("created_at", true).
		Build()

	var rows []bookmarkRow
	if err := r.db.SelectContext(ctx, &rows, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to list bookmarks", "userId", userID, "error", err)
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}

	bookmarks := make([]*domain.Bookmark, 0, len(rows))
	for _, row := range rows {
		b, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, nil
}

// Create inserts the bookmark. The primary key turns a second bookmark of
// the same problem into a no-op, reported as errs.ErrBookmarkExists.
func (r *BookmarkRepository) Create(ctx context.Context, b *domain.Bookmark) error {
	tags, err := encodeTags(b.Tags)
	if err != nil {
		return err
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(columns...).
		Into(table).
		Values(b.UserID, b.ProblemID, b.Notes, tags, b.CreatedAt).
		OnConflict("user_id", "problem_id").
		DoNothing().
		Build()

	res, err := r.db.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...)
	if err != nil {
		r.logger.Error("Failed to create bookmark", "userId", b.UserID, "problemId", b.ProblemID, "error", err)
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}
	if affected == 0 {
		return errs.ErrBookmarkExists
	}
	return nil
}

func (r *BookmarkRepository) Update(ctx context.Context, b *domain.Bookmark) error {
	tags, err := encodeTags(b.Tags)
	if err != nil {
		return err
	}

	query, args := querybuilder.NewQueryBuilder(r.schema).
		Update(table).
		Set("notes", b.Notes).
		Set("tags", tags).
		Where("user_id = ?", b.UserID).
		And("problem_id = ?", b.ProblemID).
		Build()

	res, err := r.db.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...)
	if err != nil {
		r.logger.Error("Failed to update bookmark", "userId", b.UserID, "problemId", b.ProblemID, "error", err)
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update bookmark: %w", err)
	}
	if affected == 0 {
		return errs.ErrBookmarkNotFound
	}
	return nil
}

func (r *BookmarkRepository) Delete(ctx context.Context, userID uuid.UUID, problemID string) error {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Delete(table).
		Where("user_id = ?", userID).
		And("problem_id = ?", problemID).
		Build()

	if _, err := r.db.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to delete bookmark", "userId", userID, "problemId", problemID, "error", err)
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}
