package domain

import (
	"time"

	"github.com/google/uuid"
)

type Users struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserName     string    `db:"user_name" json:"username"`
	PasswordHash *string   `db:"password_hash" json:"-"`
	Email        *string   `db:"email" json:"email,omitempty"`
	ProfileImage string    `db:"profile_image" json:"profileImage"`
	AuthProvider string    `db:"auth_provider" json:"-"`
	GoogleID     *string   `db:"google_id" json:"-"`
	Points       int       `db:"points" json:"points"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

type UsersTable struct {
	ID             string
	UserName       string
	PasswordHash   string
	Email          string
	ProfileImage   string
	AuthProvider   string
	GoogleID       string
	Points         string
	TotalSolved    string
	EasySolved     string
	MediumSolved   string
	HardSolved     string
	CurrentStreak  string
	LongestStreak  string
	LastSolvedDate string
	CreatedAt      string
}

func GetUserTable() UsersTable {
	return UsersTable{
		ID:             "id",
		UserName:       "user_name",
		PasswordHash:   "password_hash",
		Email:          "email",
		ProfileImage:   "profile_image",
		AuthProvider:   "auth_provider",
		GoogleID:       "google_id",
		Points:         "points",
		TotalSolved:    "total_solved",
		EasySolved:     "easy_solved",
		MediumSolved:   "medium_solved",
		HardSolved:     "hard_solved",
		CurrentStreak:  "current_streak",
		LongestStreak:  "longest_streak",
		LastSolvedDate: "last_solved_date",
		CreatedAt:      "created_at",
	}
}

func (t UsersTable) GetTableName() string {
	return "users"
}

// SolvedProblem records the first accepted solve of a problem
type SolvedProblem struct {
	ProblemID  string     `db:"problem_id" json:"problemId"`
	Difficulty Difficulty `db:"difficulty" json:"difficulty"`
	SolvedAt   time.Time  `db:"solved_at" json:"solvedAt"`
}

// UserStats holds the solve counters and streak of a user
type UserStats struct {
	TotalSolved    int             `db:"total_solved" json:"totalSolved"`
	EasySolved     int             `db:"easy_solved" json:"easySolved"`
	MediumSolved   int             `db:"medium_solved" json:"mediumSolved"`
	HardSolved     int             `db:"hard_solved" json:"hardSolved"`
	CurrentStreak  int             `db:"current_streak" json:"currentStreak"`
	LongestStreak  int             `db:"longest_streak" json:"longestStreak"`
	LastSolvedDate *time.Time      `db:"last_solved_date" json:"lastSolvedDate"`
	SolvedProblems []SolvedProblem `db:"-" json:"solvedProblems"`
}

// HasSolved reports whether problemID is already in the solved list
func (s UserStats) HasSolved(problemID string) bool {
	for _, p := range s.SolvedProblems {
		if p.ProblemID == problemID {
			return true
		}
	}
	return false
}

// DashboardStats is the per user dashboard payload
type DashboardStats struct {
	Stats           UserStats      `json:"stats"`
	Points          int            `json:"points"`
	ActivityHeatmap map[string]int `json:"activityHeatmap"`
}

// Timeframe narrows the leaderboard to users active since a point in time
type Timeframe string

const (
	TimeframeAll     Timeframe = "all"
	TimeframeDaily   Timeframe = "daily"
	TimeframeWeekly  Timeframe = "weekly"
	TimeframeMonthly Timeframe = "monthly"
)

// ParseTimeframe falls back to TimeframeAll for unknown values
func ParseTimeframe(s string) Timeframe {
	switch tf := Timeframe(s); tf {
	case TimeframeDaily, TimeframeWeekly, TimeframeMonthly:
		return tf
	}
	return TimeframeAll
}

type LeaderboardEntry struct {
	Rank          int       `db:"-" json:"rank"`
	UserID        uuid.UUID `db:"id" json:"userId"`
	UserName      string    `db:"user_name" json:"name"`
	ProfileImage  string    `db:"profile_image" json:"profileImage"`
	Points        int       `db:"points" json:"points"`
	TotalSolved   int       `db:"total_solved" json:"totalSolved"`
	CurrentStreak int       `db:"current_streak" json:"currentStreak"`
}

type Leaderboard struct {
	Timeframe Timeframe          `json:"timeframe"`
	Entries   []LeaderboardEntry `json:"leaderboard"`
}
