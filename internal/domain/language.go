package domain

import "strings"

// Language identifies a programming language a submission can be written in
type Language string

const (
	LanguageJavaScript Language = "javascript"
	LanguagePython     Language = "python"
	LanguageJava       Language = "java"
)

// ParseLanguage normalizes a user supplied language name
func ParseLanguage(s string) Language {
	return Language(strings.ToLower(strings.TrimSpace(s)))
}

// SandboxLanguage is the (language, version) pair the execution sandbox understands
type SandboxLanguage struct {
	Language string `json:"language" toml:"language"`
	Version  string `json:"version" toml:"version"`
	FileExt  string `json:"file_ext" toml:"file_ext"`
}

// ExecutionRequest is a single program run sent to the sandbox. StdinArgs
// is only set when the source runs unwrapped.
type ExecutionRequest struct {
	Language   Language
	SourceCode string
	StdinArgs  string
}
