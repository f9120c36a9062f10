package errs

import "errors"

var (
	ErrInvalidProblem   = errors.New("invalid problem")
	ErrProblemExists    = errors.New("problem with this id already exists")
	ErrBookmarkExists   = errors.New("problem already bookmarked")
	ErrBookmarkNotFound = errors.New("bookmark not found")
)
