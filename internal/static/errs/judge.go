package errs

import "errors"

var (
	ErrCodeRequired        = errors.New("code is required")
	ErrLanguageRequired    = errors.New("language is required")
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrProblemNotFound     = errors.New("problem not found")
	ErrNoTestCases         = errors.New("no test cases available for this problem")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrUserNotFound        = errors.New("user not found")
)
