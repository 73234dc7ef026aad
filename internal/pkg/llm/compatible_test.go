package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pawtrack/core/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibleComplete(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"{\"summary\":\"ok\"}"}}]}`))
	}))
	defer srv.Close()

	client, err := New(config.AIConfig{
		Type:     "openai-compatible",
		APIKey:   "sk-test",
		Endpoint: srv.URL,
		Model:    "test-model",
	})
	require.NoError(t, err)

	text, err := client.Complete(context.Background(), Request{
		System:      "system prompt",
		User:        "user content",
		Temperature: 0.1,
		MaxTokens:   300,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"ok"}`, text)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.EqualValues(t, 300, gotBody["max_tokens"])
	assert.InDelta(t, 0.1, gotBody["temperature"].(float64), 1e-9)

	messages := gotBody["messages"].([]interface{})
	require.Len(t, messages, 2)
	first := messages[0].(map[string]interface{})
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "system prompt", first["content"])
}

func TestCompatibleNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := New(config.AIConfig{Type: "openai-compatible", APIKey: "sk-test", Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), Request{User: "hello", MaxTokens: 300})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompatibleEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := New(config.AIConfig{Type: "openai-compatible", APIKey: "sk-test", Endpoint: srv.URL})
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), Request{User: "hello", MaxTokens: 300})
	assert.Error(t, err)
}

func TestNewRejectsUnknownProvider(t *testing.T) {
	_, err := New(config.AIConfig{Type: "palm", APIKey: "x"})
	assert.Error(t, err)
}

func TestNewRejectsMissingAPIKey(t *testing.T) {
	for _, typ := range []string{"openai", "anthropic", "openai-compatible"} {
		_, err := New(config.AIConfig{Type: typ})
		assert.Error(t, err, "provider %s", typ)
	}
}
