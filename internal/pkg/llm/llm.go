// Package llm is the chat-completion client used by the AI handlers. It
// supports the OpenAI and Anthropic SDKs plus any OpenAI-compatible endpoint
// spoken over plain HTTP.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/pawtrack/core/internal/config"
)

// Request is a single non-streaming completion call. The prompt instructs
// the model to answer with a bare JSON object; callers parse the returned
// text with Unmarshal.
type Request struct {
	System      string
	User        string
	Temperature float64
	MaxTokens   int64
}

// Client issues one completion per call. Implementations are safe for
// concurrent use.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// New builds a Client for the configured provider type.
func New(cfg config.AIConfig) (Client, error) {
	switch normalizeType(cfg.Type) {
	case "openai", "":
		return newOpenAI(cfg)
	case "anthropic":
		return newAnthropic(cfg)
	case "openai-compatible", "openaicompatible":
		return newCompatible(cfg)
	default:
		return nil, fmt.Errorf("unknown AI provider type: %s", cfg.Type)
	}
}

func normalizeType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}
