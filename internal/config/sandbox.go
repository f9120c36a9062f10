package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gitlab.com/codearena.net/internal/domain"
)

type SandboxConfig struct {
	Url       string
	Timeout   time.Duration
	Languages map[domain.Language]domain.SandboxLanguage
}

// DefaultSandboxLanguages is the language table of the public Piston instance
func DefaultSandboxLanguages() map[domain.Language]domain.SandboxLanguage {
	return map[domain.Language]domain.SandboxLanguage{
		domain.LanguageJavaScript: {Language: "javascript", Version: "18.15.0", FileExt: "js"},
		domain.LanguagePython:     {Language: "python", Version: "3.10.0", FileExt: "py"},
		domain.LanguageJava:       {Language: "java", Version: "15.0.2", FileExt: "java"},
	}
}

func NewSandboxConfig() *SandboxConfig {
	timeoutSec, err := strconv.Atoi(os.Getenv("PISTON_TIMEOUT_SEC"))
	if err != nil || timeoutSec <= 0 {
		timeoutSec = 30
	}

	languages := DefaultSandboxLanguages()
	for lang, spec := range languages {
		key := fmt.Sprintf("PISTON_%s_VERSION", strings.ToUpper(string(lang)))
		if v := os.Getenv(key); v != "" {
			spec.Version = v
			languages[lang] = spec
		}
	}

	return &SandboxConfig{
		Url:       strings.TrimRight(getEnv("PISTON_URL", "https://emkc.org/api/v2/piston"), "/"),
		Timeout:   time.Duration(timeoutSec) * time.Second,
		Languages: languages,
	}
}
