// Package problemfile reads problem definitions written as TOML files.
package problemfile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"gitlab.com/codearena.net/internal/domain"
	"gitlab.com/codearena.net/internal/static/errs"
)

const Ext = ".toml"

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var ErrInvalidProblem = errs.ErrInvalidProblem

// Parse decodes one problem. Unknown keys are rejected so that a typo in a
// test case table does not silently drop the case.
func Parse(data []byte) (*domain.Problem, error) {
	var p domain.Problem
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			return nil, fmt.Errorf("failed to decode problem at %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("failed to decode problem: %w", err)
	}
	if err := Validate(&p); err != nil {
		return nil, err
	}
	p.ApplyDefaults()
	return &p, nil
}

// Validate checks the fields judging depends on
func Validate(p *domain.Problem) error {
	switch {
	case !slugPattern.MatchString(p.ID):
		return fmt.Errorf("%w: id %q is not a slug", ErrInvalidProblem, p.ID)
	case p.Title == "":
		return fmt.Errorf("%w: %s has no title", ErrInvalidProblem, p.ID)
	case !p.Difficulty.Valid():
		return fmt.Errorf("%w: %s has unknown difficulty %q", ErrInvalidProblem, p.ID, p.Difficulty)
	case len(p.TestCases) == 0:
		return fmt.Errorf("%w: %s has no test cases", ErrInvalidProblem, p.ID)
	case p.TimeLimitMs < 0 || p.MemoryLimitKb < 0:
		return fmt.Errorf("%w: %s has a negative limit", ErrInvalidProblem, p.ID)
	}
	return nil
}

// Load reads a single problem file
func Load(path string) (*domain.Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// LoadDir reads every problem file in dir, ordered by file name. Duplicate
// ids are an error.
func LoadDir(dir string) ([]*domain.Problem, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*"+Ext))
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	sort.Strings(paths)

	seen := make(map[string]string, len(paths))
	problems := make([]*domain.Problem, 0, len(paths))
	for _, path := range paths {
		p, err := Load(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[p.ID]; ok {
			return nil, fmt.Errorf("%w: id %s used by %s and %s", ErrInvalidProblem, p.ID, prev, path)
		}
		seen[p.ID] = path
		problems = append(problems, p)
	}
	return problems, nil
}
