package receipt

import (
	"github.com/gin-gonic/gin"
	"github.com/pawtrack/core/internal/pkg/response"
)

// Handler wires the receipt extraction endpoint.
type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/extract-receipt", h.extract)
}

func (h *Handler) extract(c *gin.Context) {
	var req ExtractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing extracted_text")
		return
	}

	result, persisted, err := h.svc.Extract(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, extractionResponse{ExtractionResult: *result, Persisted: persisted})
}
