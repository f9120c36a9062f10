package domain

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the classified outcome of judging a submission
type Verdict string

const (
	VerdictAccepted          Verdict = "Accepted"
	VerdictWrongAnswer       Verdict = "Wrong Answer"
	VerdictRuntimeError      Verdict = "Runtime Error"
	VerdictTimeLimitExceeded Verdict = "Time Limit Exceeded"
	VerdictCompilationError  Verdict = "Compilation Error"
)

// JudgeOutcome is the aggregate result of running a submission against every test case
type JudgeOutcome struct {
	Verdict          Verdict          `json:"status"`
	TestResults      []TestCaseResult `json:"testResults"`
	TotalTests       int              `json:"totalTests"`
	PassedTests      int              `json:"passedTests"`
	AverageRuntimeMs int64            `json:"runtime"`
}

// Submission represents a judged code submission. Submissions are append-only.
type Submission struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	ProblemID    string    `json:"problemId"`
	Code         string    `json:"code,omitempty"`
	Language     Language  `json:"language"`
	JudgeOutcome
	PointsEarned int       `json:"pointsEarned"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewSubmission creates a new submission from a finished judge run
func NewSubmission(userID uuid.UUID, problemID string, language Language, code string, outcome JudgeOutcome, points int) *Submission {
	return &Submission{
		ID:           uuid.New(),
		UserID:       userID,
		ProblemID:    problemID,
		Code:         code,
		Language:     language,
		JudgeOutcome: outcome,
		PointsEarned: points,
		CreatedAt:    time.Now(),
	}
}

// SubmissionResult is returned to the caller of the submit operation
type SubmissionResult struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	JudgeOutcome
	PointsEarned int `json:"pointsEarned"`
}
