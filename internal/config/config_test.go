package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"PORT", "ENV", "NODE_ENV", "DB_DSN", "DATABASE_DSN",
		"ALLOWED_ORIGINS", "AI_PROVIDER", "AI_API_KEY", "OPENAI_API_KEY",
		"AI_ENDPOINT", "AI_MODEL", "WEBHOOK_SECRET"} {
		t.Setenv(name, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, 2333, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "openai", cfg.AI.Type)
	assert.False(t, cfg.IsDev())
	assert.False(t, cfg.HasDatabase())
	assert.Error(t, cfg.Validate(), "no database configured must not validate")
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: 8080
env: development
dsn: user:pass@tcp(localhost:3306)/pawtrack
ai:
  type: anthropic
  api_key: sk-ant
webhook_secret: whsec
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "anthropic", cfg.AI.Type)
	assert.Equal(t, "sk-ant", cfg.AI.APIKey)
	assert.Equal(t, "whsec", cfg.WebhookSecret)
	assert.NoError(t, cfg.Validate())
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: 8080\nai:\n  api_key: from-file\n"), 0o600))

	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "user:pass@tcp(db:3306)/pawtrack")
	t.Setenv("AI_API_KEY", "from-env")
	t.Setenv("WEBHOOK_SECRET", "whsec-env")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com, https://admin.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "from-env", cfg.AI.APIKey)
	assert.Equal(t, "whsec-env", cfg.WebhookSecret)
	assert.True(t, cfg.HasDatabase())
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.AllowedOrigins)
}

func TestOpenAIKeyAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-openai")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "sk-openai", cfg.AI.APIKey)
}
