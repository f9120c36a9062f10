package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubmissionJudgedEvent is emitted after a submission has been judged and stored
type SubmissionJudgedEvent struct {
	SubmissionID uuid.UUID `json:"submissionId"`
	UserID       uuid.UUID `json:"userId"`
	ProblemID    string    `json:"problemId"`
	Language     Language  `json:"language"`
	Verdict      Verdict   `json:"status"`
	PassedTests  int       `json:"passedTests"`
	TotalTests   int       `json:"totalTests"`
	RuntimeMs    int64     `json:"runtime"`
	PointsEarned int       `json:"pointsEarned"`
	Timestamp    time.Time `json:"timestamp"`
}
