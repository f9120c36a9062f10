package problemrepository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"gitlab.com/codearena.net/internal/core/ports/primary"
	"gitlab.com/codearena.net/internal/core/ports/secondary"
	"gitlab.com/codearena.net/internal/domain"
	querybuilder "gitlab.com/codearena.net/internal/utils"
)

const table = "problems"

var columns = []string{
	"id", "title", "difficulty", "category", "description", "examples", "constraints",
	"starter_code", "test_cases", "time_limit_ms", "memory_limit_kb", "created_at", "updated_at",
}

var _ secondary.ProblemRepository = (*ProblemRepository)(nil)

// ProblemRepository stores problems in PostgreSQL. Nested fields live in JSONB columns.
type ProblemRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func NewProblemRepository(db *sqlx.DB, logger primary.Logger, schema string) *ProblemRepository {
	return &ProblemRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

type problemRow struct {
	ID            string    `db:"id"`
	Title         string    `db:"title"`
	Difficulty    string    `db:"difficulty"`
	Category      string    `db:"category"`
	Description   []byte    `db:"description"`
	Examples      []byte    `db:"examples"`
	Constraints   []byte    `db:"constraints"`
	StarterCode   []byte    `db:"starter_code"`
	TestCases     []byte    `db:"test_cases"`
	TimeLimitMs   int       `db:"time_limit_ms"`
	MemoryLimitKb int       `db:"memory_limit_kb"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r problemRow) toDomain() (*domain.Problem, error) {
	p := &domain.Problem{
		ID:            r.ID,
		Title:         r.Title,
		Difficulty:    domain.Difficulty(r.Difficulty),
		Category:      r.Category,
		TimeLimitMs:   r.TimeLimitMs,
		MemoryLimitKb: r.MemoryLimitKb,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}

	fields := []struct {
		name string
		raw  []byte
		dst  interface{}
	}{
		{"description", r.Description, &p.Description},
		{"examples", r.Examples, &p.Examples},
		{"constraints", r.Constraints, &p.Constraints},
		{"starter_code", r.StarterCode, &p.StarterCode},
		{"test_cases", r.TestCases, &p.TestCases},
	}
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("failed to unmarshal problem %s: %w", f.name, err)
		}
	}

	return p, nil
}

// GetBySlug loads a problem with every test case, hidden ones included
func (r *ProblemRepository) GetBySlug(ctx context.Context, slug string) (*domain.Problem, error) {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns...).
		From(table).
		Where("id = ?", slug).
		Build()

	var row problemRow
	if err := r.db.GetContext(ctx, &row, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get problem", "problemId", slug, "error", err)
		return nil, fmt.Errorf("failed to get problem: %w", err)
	}

	return row.toDomain()
}

func (r *ProblemRepository) List(ctx context.Context) ([]*domain.Problem, error) {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(columns...).
		From(table).
		OrderBy("created_at", false).
		Build()

	var rows []problemRow
	if err := r.db.SelectContext(ctx, &rows, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to list problems", "error", err)
		return nil, fmt.Errorf("failed to list problems: %w", err)
	}

	problems := make([]*domain.Problem, 0, len(rows))
	for _, row := range rows {
		p, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		problems = append(problems, p)
	}
	return problems, nil
}

func (r *ProblemRepository) Upsert(ctx context.Context, problem *domain.Problem) error {
	problem.ApplyDefaults()
	now := time.Now()
	if problem.CreatedAt.IsZero() {
		problem.CreatedAt = now
	}
	problem.UpdatedAt = now

	// jsonb columns take text; lib/pq would send []byte as bytea
	encoded := make([]string, 0, 5)
	for _, v := range []interface{}{problem.Description, problem.Examples, problem.Constraints, problem.StarterCode, problem.TestCases} {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to marshal problem %s: %w", problem.ID, err)
		}
		encoded = append(encoded, string(raw))
	}

	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(columns...).
		Into(table).
		Values(
			problem.ID, problem.Title, problem.Difficulty, problem.Category,
			encoded[0], encoded[1], encoded[2], encoded[3], encoded[4],
			problem.TimeLimitMs, problem.MemoryLimitKb, problem.CreatedAt, problem.UpdatedAt,
		).
		OnConflict("id").
		SetExclude(
			"title", "difficulty", "category", "description", "examples", "constraints",
			"starter_code", "test_cases", "time_limit_ms", "memory_limit_kb", "updated_at",
		).
		Build()

	if _, err := r.db.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		r.logger.Error("Failed to upsert problem", "problemId", problem.ID, "error", err)
		return fmt.Errorf("failed to upsert problem: %w", err)
	}

	return nil
}

func (r *ProblemRepository) Delete(ctx context.Context, slug string) (bool, error) {
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Delete(table).
		Where("id = ?", slug).
		Build()

	res, err := r.db.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...)
	if err != nil {
		r.logger.Error("Failed to delete problem", "problemId", slug, "error", err)
		return false, fmt.Errorf("failed to delete problem: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete problem: %w", err)
	}
	return affected > 0, nil
}
