package judge

import (
	"fmt"
	"regexp"
	"strings"

	"gitlab.com/codearena.net/internal/domain"
)

// WrapStatus tells how the wrapper treated a piece of source code
type WrapStatus int

const (
	// WrapInvoked means a call of the entry point with the test input was appended
	WrapInvoked WrapStatus = iota
	// WrapPassThrough means the source is run as is: the input is empty or the
	// language expects the user to provide the program entry point
	WrapPassThrough
	// WrapUnresolved means no entry point could be located and the source is run as is
	WrapUnresolved
)

func (s WrapStatus) String() string {
	switch s {
	case WrapInvoked:
		return "invoked"
	case WrapPassThrough:
		return "pass-through"
	case WrapUnresolved:
		return "unresolved"
	}
	return "unknown"
}

// EntryPoint is the callable a test input is passed to
type EntryPoint struct {
	Name string
	// Receiver is the class to instantiate before calling Name, empty for free functions
	Receiver string
}

// EntryPointExtractor locates the entry point in source of unknown exact shape
// and renders a call of it that prints the result.
type EntryPointExtractor interface {
	ExtractEntryPoint(source string) (EntryPoint, bool)
	Invocation(ep EntryPoint, rawInput string) string
}

// Wrapper turns user source into a program that calls the solution with a test input
type Wrapper struct {
	extractors map[domain.Language]EntryPointExtractor
}

// NewWrapper creates a wrapper for the languages whose solutions are plain
// functions. Languages without an extractor are run unmodified.
func NewWrapper() *Wrapper {
	return &Wrapper{
		extractors: map[domain.Language]EntryPointExtractor{
			domain.LanguageJavaScript: javascriptExtractor{},
			domain.LanguagePython:     pythonExtractor{},
		},
	}
}

// Wrap appends an invocation of the entry point with rawInput spliced in
// verbatim as the argument list.
func (w *Wrapper) Wrap(language domain.Language, source string, rawInput string) (string, WrapStatus) {
	if rawInput == "" {
		return source, WrapPassThrough
	}

	extractor, ok := w.extractors[language]
	if !ok {
		return source, WrapPassThrough
	}

	ep, ok := extractor.ExtractEntryPoint(source)
	if !ok {
		return source, WrapUnresolved
	}

	return source + "\n\n" + extractor.Invocation(ep, rawInput), WrapInvoked
}

var jsFunctionPattern = regexp.MustCompile(`(?:var|let|const)\s+(\w+)\s*=\s*function|function\s+(\w+)`)

type javascriptExtractor struct{}

func (javascriptExtractor) ExtractEntryPoint(source string) (EntryPoint, bool) {
	m := jsFunctionPattern.FindStringSubmatch(source)
	if m == nil {
		return EntryPoint{}, false
	}
	name := m[1]
	if name == "" {
		name = m[2]
	}
	return EntryPoint{Name: name}, name != ""
}

func (javascriptExtractor) Invocation(ep EntryPoint, rawInput string) string {
	return fmt.Sprintf("// Test execution\nconsole.log(%s(%s));", ep.Name, rawInput)
}

const pythonSolutionClass = "class Solution:"

var (
	pyMethodPattern   = regexp.MustCompile(`def\s+(\w+)\s*\(self`)
	pyFunctionPattern = regexp.MustCompile(`def\s+(\w+)\s*\(`)
)

type pythonExtractor struct{}

func (pythonExtractor) ExtractEntryPoint(source string) (EntryPoint, bool) {
	if strings.Contains(source, pythonSolutionClass) {
		m := pyMethodPattern.FindStringSubmatch(source)
		if m == nil {
			return EntryPoint{}, false
		}
		return EntryPoint{Name: m[1], Receiver: "Solution"}, true
	}

	m := pyFunctionPattern.FindStringSubmatch(source)
	if m == nil {
		return EntryPoint{}, false
	}
	return EntryPoint{Name: m[1]}, true
}

func (pythonExtractor) Invocation(ep EntryPoint, rawInput string) string {
	if ep.Receiver != "" {
		return fmt.Sprintf("# Test execution\nsolution = %s()\nprint(solution.%s(%s))", ep.Receiver, ep.Name, rawInput)
	}
	return fmt.Sprintf("# Test execution\nprint(%s(%s))", ep.Name, rawInput)
}
