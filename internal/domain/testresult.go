package domain

// TestCaseResult represents the result of a single test case execution
type TestCaseResult struct {
	TestNumber     int     `json:"testNumber"`
	Passed         bool    `json:"passed"`
	Input          string  `json:"input"`
	ExpectedOutput string  `json:"expectedOutput"`
	ActualOutput   string  `json:"actualOutput"`
	RuntimeMs      int64   `json:"runtime"`
	Error          *string `json:"error"`
}

// ErrorMessage returns the case error or an empty string
func (r TestCaseResult) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// ExecutionResult is the raw, unnormalized response of one sandbox run
type ExecutionResult struct {
	Succeeded bool
	Stdout    string
	Stderr    *string
	// TimedOut is set when the run was abandoned because its deadline expired
	TimedOut bool
}
