package app

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pawtrack/core/internal/modules/billing"
	"github.com/pawtrack/core/internal/modules/receipt"
	"github.com/pawtrack/core/internal/modules/visit"
	"github.com/pawtrack/core/internal/pkg/llm"
)

func (a *App) registerRoutes(llmClient llm.Client) {
	api := a.router.Group("/api")

	ai := api.Group("/ai")
	receipt.NewHandler(receipt.NewService(llmClient, receipt.NewStore(a.db), a.logger)).RegisterRoutes(ai)
	visit.NewHandler(visit.NewService(llmClient, a.logger)).RegisterRoutes(ai)

	webhooks := api.Group("/webhooks")
	billing.NewHandler(billing.NewService(billing.NewStore(a.db), a.logger), a.cfg.WebhookSecret, a.logger).RegisterRoutes(webhooks)

	a.router.GET("/health", a.health)
}

func (a *App) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
