package domain

import "time"

// Difficulty of a problem
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

const (
	DefaultTimeLimitMs   = 3000
	DefaultMemoryLimitKb = 128000
)

// BasePoints returns the points awarded for an accepted solution
func (d Difficulty) BasePoints() int {
	switch d {
	case DifficultyEasy:
		return 10
	case DifficultyMedium:
		return 25
	case DifficultyHard:
		return 50
	}
	return 0
}

func (d Difficulty) Valid() bool {
	return d.BasePoints() > 0
}

type Description struct {
	Text  string   `json:"text" toml:"text"`
	Notes []string `json:"notes" toml:"notes"`
}

type Example struct {
	Input       string `json:"input" toml:"input"`
	Output      string `json:"output" toml:"output"`
	Explanation string `json:"explanation" toml:"explanation"`
}

// Problem is a catalogued programming problem, identified by a URL friendly slug
type Problem struct {
	ID            string              `json:"id" toml:"id"`
	Title         string              `json:"title" toml:"title"`
	Difficulty    Difficulty          `json:"difficulty" toml:"difficulty"`
	Category      string              `json:"category" toml:"category"`
	Description   Description         `json:"description" toml:"description"`
	Examples      []Example           `json:"examples" toml:"examples"`
	Constraints   []string            `json:"constraints" toml:"constraints"`
	StarterCode   map[Language]string `json:"starterCode" toml:"starter_code"`
	TestCases     []TestCase          `json:"testCases" toml:"test_cases"`
	TimeLimitMs   int                 `json:"timeLimit" toml:"time_limit_ms"`
	MemoryLimitKb int                 `json:"memoryLimit" toml:"memory_limit_kb"`
	CreatedAt     time.Time           `json:"createdAt" toml:"-"`
	UpdatedAt     time.Time           `json:"updatedAt" toml:"-"`
}

// Public returns a copy of the problem with hidden test cases removed
func (p *Problem) Public() *Problem {
	cp := *p
	cp.TestCases = make([]TestCase, 0, len(p.TestCases))
	for _, tc := range p.TestCases {
		if !tc.Hidden {
			cp.TestCases = append(cp.TestCases, tc)
		}
	}
	return &cp
}

// ApplyDefaults fills unset limits
func (p *Problem) ApplyDefaults() {
	if p.TimeLimitMs <= 0 {
		p.TimeLimitMs = DefaultTimeLimitMs
	}
	if p.MemoryLimitKb <= 0 {
		p.MemoryLimitKb = DefaultMemoryLimitKb
	}
}
