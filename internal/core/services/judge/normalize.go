package judge

import (
	"regexp"
	"strings"
	"unicode"
)

// space matches the same runes as isSpace. Go's \s alone is ASCII only.
const space = `[\t\n\v\f\r\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var (
	whitespaceRun = regexp.MustCompile(space + `+`)
	commaSpacing  = regexp.MustCompile(space + `*,` + space + `*`)
)

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\u2028', '\u2029', '\uFEFF':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// Normalize canonicalizes program output so that cosmetic whitespace
// differences do not matter: lines are trimmed, inner whitespace runs
// collapse to one space, spaces around commas are dropped and blank lines
// are removed.
func Normalize(output string) string {
	output = strings.TrimFunc(output, isSpace)
	if output == "" {
		return ""
	}

	lines := strings.Split(output, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimFunc(line, isSpace)
		line = whitespaceRun.ReplaceAllString(line, " ")
		line = commaSpacing.ReplaceAllString(line, ",")
		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}

// OutputsMatch compares two outputs after normalization. There is no numeric
// tolerance.
func OutputsMatch(actual, expected string) bool {
	return Normalize(actual) == Normalize(expected)
}
