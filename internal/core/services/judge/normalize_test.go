package judge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gitlab.com/codearena.net/internal/core/services/judge"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   \n\t ", ""},
		{"[0, 1]", "[0,1]"},
		{"[0 ,  1 ]\n", "[0,1 ]"},
		{"  a   b  \n\n\n c\t\td ", "a b\nc d"},
		{"1\r\n2\r\n", "1\n2"},
		{"{ \"a\" : 1 ,\"b\":2 }", "{ \"a\" : 1,\"b\":2 }"},
		{"a\u00a0b", "a b"},
		{"a\vb", "a b"},
		{"\uFEFFa\u3000\u3000b\uFEFF", "a b"},
		{"1\u00a0,\u2009 2", "1,2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, judge.Normalize(tt.in), "input %q", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"[0, 1]",
		" x , y ,\n\n z ",
		"a  , b",
		"\t\tline one  \r\n  line   two\n,\n , ,",
		"hello\n\n\nworld   ",
		"\uFEFF x\u00a0,\v y \u2028",
		"\u00a0\n\u00a0a\u00a0\n",
	}

	for _, in := range inputs {
		once := judge.Normalize(in)
		assert.Equal(t, once, judge.Normalize(once), "input %q", in)
	}
}

func TestOutputsMatch(t *testing.T) {
	assert.True(t, judge.OutputsMatch("[0,1]", "[0, 1]"))
	assert.True(t, judge.OutputsMatch("[0,1]\n", "[0,1]"))
	assert.True(t, judge.OutputsMatch("a\n\n\nb", "a\nb"))
	assert.False(t, judge.OutputsMatch("[1,0]", "[0,1]"))
	assert.False(t, judge.OutputsMatch("1.0", "1"))

	// Unicode and vertical whitespace count like plain spaces.
	assert.True(t, judge.OutputsMatch("a\u00a0b", "a b"))
	assert.True(t, judge.OutputsMatch("a\vb", "a b"))
	assert.True(t, judge.OutputsMatch("\uFEFF[0, 1]", "[0,1]"))
}
