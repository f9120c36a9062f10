package stats

import (
	"time"

	"gitlab.com/codearena.net/internal/domain"
)

// ApplySolve records the first solve of a problem. It reports false and
// leaves stats untouched when the problem was solved before. Streak days are
// calendar days in the location of now.
func ApplySolve(stats domain.UserStats, problemID string, difficulty domain.Difficulty, now time.Time) (domain.UserStats, bool) {
	if stats.HasSolved(problemID) {
		return stats, false
	}

	next := stats
	next.SolvedProblems = make([]domain.SolvedProblem, 0, len(stats.SolvedProblems)+1)
	next.SolvedProblems = append(next.SolvedProblems, stats.SolvedProblems...)
	next.SolvedProblems = append(next.SolvedProblems, domain.SolvedProblem{
		ProblemID:  problemID,
		Difficulty: difficulty,
		SolvedAt:   now,
	})

	next.TotalSolved++
	switch difficulty {
	case domain.DifficultyEasy:
		next.EasySolved++
	case domain.DifficultyMedium:
		next.MediumSolved++
	case domain.DifficultyHard:
		next.HardSolved++
	}

	if stats.LastSolvedDate == nil {
		next.CurrentStreak = 1
		next.LongestStreak = 1
	} else {
		switch daysBetween(*stats.LastSolvedDate, now) {
		case 0:
		case 1:
			next.CurrentStreak++
			if next.CurrentStreak > next.LongestStreak {
				next.LongestStreak = next.CurrentStreak
			}
		default:
			next.CurrentStreak = 1
		}
	}

	solvedAt := now
	next.LastSolvedDate = &solvedAt
	return next, true
}

// daysBetween counts calendar days from a to b in the location of b
func daysBetween(a, b time.Time) int {
	return dayNumber(b) - dayNumber(a.In(b.Location()))
}

func dayNumber(t time.Time) int {
	y, m, d := t.Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400)
}
