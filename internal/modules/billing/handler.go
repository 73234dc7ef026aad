package billing

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pawtrack/core/internal/pkg/response"
	"go.uber.org/zap"
)

// Handler receives billing provider webhooks. Signature verification runs
// before any parsing; it is skipped only when no secret is configured.
type Handler struct {
	svc    *Service
	secret string
	logger *zap.Logger
}

func NewHandler(svc *Service, secret string, logger *zap.Logger) *Handler {
	return &Handler{svc: svc, secret: secret, logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/billing", h.receive)
}

func (h *Handler) receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		response.BadRequest(c, "unreadable request body")
		return
	}

	if h.secret != "" && !VerifySignature(body, c.GetHeader(SignatureHeader), h.secret) {
		h.logger.Warn("webhook signature mismatch", zap.String("ip", c.ClientIP()))
		response.Unauthorized(c, "invalid webhook signature")
		return
	}

	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		response.BadRequest(c, "invalid webhook payload")
		return
	}

	// The full event is retained verbatim for audit and replay.
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		response.BadRequest(c, "invalid webhook payload")
		return
	}

	if err := h.svc.HandleEvent(c.Request.Context(), &payload, raw); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
