package domain

// TestCase represents a test case for code execution
type TestCase struct {
	Input          string `json:"input" toml:"input"`
	ExpectedOutput string `json:"expectedOutput" toml:"expected_output"`
	Hidden         bool   `json:"hidden" toml:"hidden"`
}
