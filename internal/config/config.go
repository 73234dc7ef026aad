package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the server looks for its YAML config when no
// -config flag is given. The file is optional; environment variables alone
// are enough to run.
const DefaultConfigPath = "config.yml"

// AIConfig selects and authenticates the LLM provider.
// Type is one of "openai", "anthropic" or "openai-compatible"; the last one
// talks plain chat-completions HTTP against Endpoint.
type AIConfig struct {
	Type     string `yaml:"type"`
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// AppConfig holds runtime startup configuration. It is constructed once in
// main and passed down explicitly; nothing reads it as ambient state.
type AppConfig struct {
	Port           int      `yaml:"port"`
	Env            string   `yaml:"env"` // "development" | "production"
	DSN            string   `yaml:"dsn"` // MySQL DSN
	AllowedOrigins []string `yaml:"allowed_origins"`
	AI             AIConfig `yaml:"ai"`
	WebhookSecret  string   `yaml:"webhook_secret"`
}

// Load reads the YAML file at path (if it exists), applies environment
// overrides on top and fills defaults. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	if path == "" {
		path = DefaultConfigPath
	}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// env-only setup
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if v := envStr("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := envStr("ENV", "NODE_ENV"); v != "" {
		cfg.Env = v
	}
	if v := envStr("DB_DSN", "DATABASE_DSN"); v != "" {
		cfg.DSN = v
	}
	if v := envStr("ALLOWED_ORIGINS"); v != "" {
		cfg.AllowedOrigins = splitList(v)
	}
	if v := envStr("AI_PROVIDER"); v != "" {
		cfg.AI.Type = v
	}
	if v := envStr("AI_API_KEY", "OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := envStr("AI_ENDPOINT"); v != "" {
		cfg.AI.Endpoint = v
	}
	if v := envStr("AI_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := envStr("WEBHOOK_SECRET"); v != "" {
		cfg.WebhookSecret = v
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Port == 0 {
		cfg.Port = 2333
	}
	if cfg.Env == "" {
		cfg.Env = "production"
	}
	if cfg.AI.Type == "" {
		cfg.AI.Type = "openai"
	}
}

// IsDev reports whether the server runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

// HasDatabase reports whether a database connection is configured.
func (c *AppConfig) HasDatabase() bool { return strings.TrimSpace(c.DSN) != "" }

// Validate rejects configurations the server cannot start with. The billing
// webhook upserts rows, so a database is mandatory. The AI API key is
// checked separately when the LLM client is built.
func (c *AppConfig) Validate() error {
	if !c.HasDatabase() {
		return fmt.Errorf("db dsn is required: the billing webhook cannot run without a database")
	}
	return nil
}

// envStr returns the first non-empty environment variable among names.
func envStr(names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			return v
		}
	}
	return ""
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
