package visit

import (
	"github.com/gin-gonic/gin"
	"github.com/pawtrack/core/internal/pkg/response"
)

// Handler wires the visit summary endpoint.
type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/summarize-visit", h.summarize)
}

func (h *Handler) summarize(c *gin.Context) {
	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Missing pet or visit data")
		return
	}

	result, err := h.svc.Summarize(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}
