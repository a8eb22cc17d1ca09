package http

import (
	"github.com/gin-gonic/gin"

	"task-orchestrator/internal/middleware"
)

// RegisterRoutes maps the orchestrator routes onto the /api group.
// Only the dispatch route is rate limited; classification runs no handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/", h.Root)

	orch := rg.Group("/orchestrator")
	{
		orch.POST("", mw.RateLimit(), h.Orchestrate)
		orch.POST("/classify", h.Classify)
	}
}
