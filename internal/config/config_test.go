package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codearena.net/internal/domain"
)

func TestNewSandboxConfigDefaults(t *testing.T) {
	t.Setenv("PISTON_URL", "")
	t.Setenv("PISTON_TIMEOUT_SEC", "")

	cfg := NewSandboxConfig()
	assert.Equal(t, "https://emkc.org/api/v2/piston", cfg.Url)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	require.Len(t, cfg.Languages, 3)
	assert.Equal(t, "18.15.0", cfg.Languages[domain.LanguageJavaScript].Version)
	assert.Equal(t, "py", cfg.Languages[domain.LanguagePython].FileExt)
}

func TestNewSandboxConfigVersionOverride(t *testing.T) {
	t.Setenv("PISTON_URL", "http://piston:2000/api/v2/")
	t.Setenv("PISTON_PYTHON_VERSION", "3.12.0")

	cfg := NewSandboxConfig()
	assert.Equal(t, "http://piston:2000/api/v2", cfg.Url)
	assert.Equal(t, "3.12.0", cfg.Languages[domain.LanguagePython].Version)
	assert.Equal(t, "15.0.2", cfg.Languages[domain.LanguageJava].Version)
}

func TestNewJudgeConfig(t *testing.T) {
	t.Setenv("JUDGE_BASELINE_RUNTIME_MS", "")
	t.Setenv("JUDGE_DEADLINE_FACTOR", "0.5")
	t.Setenv("JUDGE_STRICT_ENTRY_POINT", "true")

	cfg := NewJudgeConfig()
	assert.Equal(t, int64(1000), cfg.BaselineRuntimeMs)
	assert.Equal(t, 2.0, cfg.DeadlineFactor)
	assert.True(t, cfg.StrictEntryPoint)
	assert.Equal(t, 10, cfg.RecentSubmissions)
}

func TestNewAdminConfig(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", " Ada@Example.com, ,grace@example.com")
	t.Setenv("ADMIN_EMAIL", "ignored@example.com")

	cfg := NewAdminConfig()
	assert.Equal(t, []string{"ada@example.com", "grace@example.com"}, cfg.Emails)
	assert.True(t, cfg.IsAdmin("ADA@example.com"))
	assert.False(t, cfg.IsAdmin("ignored@example.com"))
	assert.False(t, cfg.IsAdmin(""))
}

func TestNewAdminConfigSingleEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")
	t.Setenv("ADMIN_EMAIL", "root@example.com")

	cfg := NewAdminConfig()
	assert.True(t, cfg.IsAdmin("root@example.com"))

	var none *AdminConfig
	assert.False(t, none.IsAdmin("root@example.com"))
}
