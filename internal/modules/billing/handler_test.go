package billing

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pawtrack/core/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(store SubscriptionStore, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewHandler(NewService(store, zap.NewNop()), secret, zap.NewNop())
	h.RegisterRoutes(router.Group("/api/webhooks"))
	return router
}

func postWebhook(router *gin.Engine, body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhooks/billing", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set(SignatureHeader, signature)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestWebhookCancellationUpsert(t *testing.T) {
	store := newFakeStore()
	router := newTestRouter(store, "")

	body := []byte(`{"event":{"type":"CANCELLATION"},"app_user_id":"u1","product_id":"p1","purchased_at_ms":1700000000000,"expiration_at_ms":null}`)
	w := postWebhook(router, body, "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"received":true}`, w.Body.String())

	require.Len(t, store.upserts, 1)
	sub := store.upserts[0]
	assert.Equal(t, models.SubscriptionCancelled, sub.Status)
	assert.Nil(t, sub.ExpiresAt)

	// raw_payload retains the full original event
	var want map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &want))
	assert.Equal(t, want, sub.RawPayload)
}

func TestWebhookSignatureRequired(t *testing.T) {
	store := newFakeStore()
	secret := "whsec"
	router := newTestRouter(store, secret)
	body := []byte(`{"event":{"type":"RENEWAL"},"app_user_id":"u1"}`)

	w := postWebhook(router, body, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, store.upserts, "unverified events must not be persisted")

	w = postWebhook(router, body, Sign(body, secret))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, store.upserts, 1)
}

func TestWebhookInvalidBody(t *testing.T) {
	router := newTestRouter(newFakeStore(), "")

	w := postWebhook(router, []byte("{not json"), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Contains(t, envelope, "error")
}

func TestWebhookUpsertFailure(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("database gone away")
	router := newTestRouter(store, "")

	w := postWebhook(router, []byte(`{"event":{"type":"RENEWAL"},"app_user_id":"u1"}`), "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "database gone away", envelope["error"])
}
