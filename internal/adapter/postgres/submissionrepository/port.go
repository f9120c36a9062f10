package submissionrepository

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
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the append-only submission store with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
}

func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger) *SubmissionRepository {
	return &SubmissionRepository{
		db:     db,
		logger: logger,
	}
}

type submissionRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	ProblemID    string    `db:"problem_id"`
	Code         string    `db:"code"`
	Language     string    `db:"language"`
	Status       string    `db:"status"`
	TestResults  []byte    `db:"test_results"`
	TotalTests   int       `db:"total_tests"`
	PassedTests  int       `db:"passed_tests"`
	RuntimeMs    int64     `db:"runtime_ms"`
	PointsEarned int       `db:"points_earned"`
	CreatedAt    time.Time `db:"created_at"`
}

func (r submissionRow) toDomain() (*domain.Submission, error) {
	var results []domain.TestCaseResult
	if len(r.TestResults) > 0 {
		if err := json.Unmarshal(r.TestResults, &results); err != nil {
			return nil, fmt.Errorf("failed to unmarshal test results: %w", err)
		}
	}

	return &domain.Submission{
		ID:        r.ID,
		UserID:    r.UserID,
		ProblemID: r.ProblemID,
		Code:      r.Code,
		Language:  domain.Language(r.Language),
		JudgeOutcome: domain.JudgeOutcome{
			Verdict:          domain.Verdict(r.Status),
			TestResults:      results,
			TotalTests:       r.TotalTests,
			PassedTests:      r.PassedTests,
			AverageRuntimeMs: r.RuntimeMs,
		},
		PointsEarned: r.PointsEarned,
		CreatedAt:    r.CreatedAt,
	}, nil
}

// Create inserts a judged submission
func (r *SubmissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	results, err := json.Marshal(s.TestResults)
	if err != nil {
		r.logger.Error("Failed to marshal test results", "error", err)
		return fmt.Errorf("failed to marshal test results: %w", err)
	}

	query := `
		INSERT INTO submissions (
			id, user_id, problem_id, code, language, status, test_results,
			total_tests, passed_tests, runtime_ms, points_earned, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = r.db.ExecContext(
		ctx,
		query,
		s.ID,
		s.UserID,
		s.ProblemID,
		s.Code,
		s.Language,
		s.Verdict,
		string(results),
		s.TotalTests,
		s.PassedTests,
		s.AverageRuntimeMs,
		s.PointsEarned,
		s.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save submission", "submissionId", s.ID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	return nil
}

// ListRecent returns the latest submissions of a user for a problem. Source
// code is not selected.
func (r *SubmissionRepository) ListRecent(ctx context.Context, userID uuid.UUID, problemID string, limit int) ([]*domain.Submission, error) {
	query := `
		SELECT id, user_id, problem_id, '' AS code, language, status, test_results,
			total_tests, passed_tests, runtime_ms, points_earned, created_at
		FROM submissions
		WHERE user_id = $1 AND problem_id = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	var rows []submissionRow
	if err := r.db.SelectContext(ctx, &rows, query, userID, problemID, limit); err != nil {
		r.logger.Error("Failed to list submissions", "userId", userID, "problemId", problemID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}

	submissions := make([]*domain.Submission, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, nil
}

func (r *SubmissionRepository) Get(ctx context.Context, userID uuid.UUID, submissionID uuid.UUID) (*domain.Submission, error) {
	query := `
		SELECT id, user_id, problem_id, code, language, status, test_results,
			total_tests, passed_tests, runtime_ms, points_earned, created_at
		FROM submissions
		WHERE id = $1 AND user_id = $2
	`

	var row submissionRow
	if err := r.db.GetContext(ctx, &row, query, submissionID, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "submissionId", submissionID, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return row.toDomain()
}
