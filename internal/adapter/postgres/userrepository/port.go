package userrepository

import (
	"context"
	"database/sql"
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

const solvedProblemsTable = "solved_problems"

var _ secondary.UserPort = &userRepo{}

type userRepo struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

func New(db *sqlx.DB, logger primary.Logger, schema string) secondary.UserPort {
	return &userRepo{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

func userColumns() []string {
	tbl := domain.GetUserTable()
	return []string{
		tbl.ID, tbl.UserName, tbl.PasswordHash, tbl.Email, tbl.ProfileImage,
		tbl.AuthProvider, tbl.GoogleID, tbl.Points, tbl.CreatedAt,
	}
}

func statsColumns() []string {
	tbl := domain.GetUserTable()
	return []string{
		tbl.TotalSolved, tbl.EasySolved, tbl.MediumSolved, tbl.HardSolved,
		tbl.CurrentStreak, tbl.LongestStreak, tbl.LastSolvedDate,
	}
}

func (u userRepo) Create(ctx context.Context, user *domain.Users) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).Insert(
		userTbl.ID, userTbl.UserName, userTbl.Email, userTbl.PasswordHash,
		userTbl.ProfileImage, userTbl.AuthProvider, userTbl.GoogleID, userTbl.CreatedAt,
	).
		Into(userTbl.GetTableName()).
		Values(
			user.ID, user.UserName, user.Email, user.PasswordHash,
			user.ProfileImage, user.AuthProvider, user.GoogleID, user.CreatedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	if _, err := u.db.ExecContext(ctx, query, args...); err != nil {
		u.logger.Error("Failed to create user", "userName", user.UserName, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (u userRepo) getBy(ctx context.Context, col string, value interface{}) (*domain.Users, error) {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Select(userColumns()...).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", col), value).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	var user domain.Users
	err := u.db.GetContext(ctx, &user, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by %s: %w", col, err)
	}

	return &user, nil
}

func (u userRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Users, error) {
	return u.getBy(ctx, domain.GetUserTable().ID, id)
}

func (u userRepo) GetByGoogleID(ctx context.Context, googleID string) (*domain.Users, error) {
	return u.getBy(ctx, domain.GetUserTable().GoogleID, googleID)
}

func (u userRepo) GetByUserName(ctx context.Context, userName string) (*domain.Users, error) {
	return u.getBy(ctx, domain.GetUserTable().UserName, userName)
}

func (u userRepo) AddPoints(ctx context.Context, id uuid.UUID, points int) error {
	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Update(userTbl.GetTableName()).
		SetExpr(fmt.Sprintf("%s = %s + ?", userTbl.Points, userTbl.Points), points).
		Where(fmt.Sprintf("%s = ?", userTbl.ID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	res, err := u.db.ExecContext(ctx, query, args...)
	if err != nil {
		u.logger.Error("Failed to add points", "userId", id, "error", err)
		return fmt.Errorf("failed to add points: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrUserNotFound
	}

	return nil
}

func (u userRepo) selectStats(ctx context.Context, q sqlx.QueryerContext, id uuid.UUID, lock bool) (*domain.UserStats, error) {
	userTbl := domain.GetUserTable()
	qb := querybuilder.NewQueryBuilder(u.schema).
		Select(statsColumns()...).
		From(userTbl.GetTableName()).
		Where(fmt.Sprintf("%s = ?", userTbl.ID), id)
	if lock {
		qb = qb.ForUpdate()
	}
	query, args := qb.Build()

	var stats domain.UserStats
	if err := sqlx.GetContext(ctx, q, &stats, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	query, args = querybuilder.NewQueryBuilder(u.schema).
		Select("problem_id", "difficulty", "solved_at").
		From(solvedProblemsTable).
		Where("user_id = ?", id).
		OrderBy("solved_at", true).
		Build()

	stats.SolvedProblems = make([]domain.SolvedProblem, 0)
	if err := sqlx.SelectContext(ctx, q, &stats.SolvedProblems, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		return nil, fmt.Errorf("failed to get solved problems: %w", err)
	}

	return &stats, nil
}

func (u userRepo) GetStats(ctx context.Context, id uuid.UUID) (*domain.UserStats, error) {
	return u.selectStats(ctx, u.db, id, false)
}

func (u userRepo) UpdateStats(ctx context.Context, id uuid.UUID, fn func(stats domain.UserStats) (domain.UserStats, bool)) error {
	tx, err := u.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := u.selectStats(ctx, tx, id, true)
	if err != nil {
		return err
	}
	if current == nil {
		return errs.ErrUserNotFound
	}

	next, changed := fn(*current)
	if !changed {
		return nil
	}

	userTbl := domain.GetUserTable()
	query, args := querybuilder.NewQueryBuilder(u.schema).
		Update(userTbl.GetTableName()).
		Set(userTbl.TotalSolved, next.TotalSolved).
		Set(userTbl.EasySolved, next.EasySolved).
		Set(userTbl.MediumSolved, next.MediumSolved).
		Set(userTbl.HardSolved, next.HardSolved).
		Set(userTbl.CurrentStreak, next.CurrentStreak).
		Set(userTbl.LongestStreak, next.LongestStreak).
		Set(userTbl.LastSolvedDate, next.LastSolvedDate).
		Where(fmt.Sprintf("%s = ?", userTbl.ID), id).
		Build()

	if _, err := tx.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		u.logger.Error("Failed to update user stats", "userId", id, "error", err)
		return fmt.Errorf("failed to update user stats: %w", err)
	}

	qb := querybuilder.NewQueryBuilder(u.schema).
		Insert("user_id", "problem_id", "difficulty", "solved_at").
		Into(solvedProblemsTable)
	added := 0
	for _, p := range next.SolvedProblems {
		if current.HasSolved(p.ProblemID) {
			continue
		}
		qb = qb.Values(id, p.ProblemID, p.Difficulty, p.SolvedAt)
		added++
	}
	if added > 0 {
		query, args = qb.OnConflict("user_id", "problem_id").DoNothing().Build()
		if _, err := tx.ExecContext(ctx, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
			u.logger.Error("Failed to record solved problems", "userId", id, "error", err)
			return fmt.Errorf("failed to record solved problems: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stats update: %w", err)
	}
	return nil
}

func (u userRepo) Leaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	userTbl := domain.GetUserTable()
	qb := querybuilder.NewQueryBuilder(u.schema).
		Select(userTbl.ID, userTbl.UserName, userTbl.ProfileImage, userTbl.Points, userTbl.TotalSolved, userTbl.CurrentStreak).
		From(userTbl.GetTableName())
	if !since.IsZero() {
		qb = qb.Where(fmt.Sprintf("%s >= ?", userTbl.LastSolvedDate), since)
	}
	query, args := qb.
		OrderBy(userTbl.Points, false).
		OrderBy(userTbl.TotalSolved, false).
		Limit(limit).
		Build()

	entries := make([]domain.LeaderboardEntry, 0)
	if err := u.db.SelectContext(ctx, &entries, sqlx.Rebind(sqlx.DOLLAR, query), args...); err != nil {
		u.logger.Error("Failed to load leaderboard", "error", err)
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	return entries, nil
}
