package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-orchestrator/internal/middleware"
	orchHTTP "task-orchestrator/internal/orchestrator/delivery/http"
)

// setupOrchestratorDomain registers the orchestrator routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupOrchestratorDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := orchHTTP.New(srv.l, srv.orchestratorUC)

	// Registers /api/, /api/orchestrator, /api/orchestrator/classify
	orchHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Orchestrator domain registered")
	return nil
}
