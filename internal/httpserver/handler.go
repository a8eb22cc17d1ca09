package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-orchestrator/internal/middleware"
	"task-orchestrator/internal/model"
	"task-orchestrator/pkg/response"
)

func (srv *HTTPServer) mapHandlers() error {
	mw := srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(mw); err != nil {
		return err
	}

	srv.gin.NoRoute(response.NotFound)
	return nil
}

func (srv *HTTPServer) registerMiddlewares() middleware.Middleware {
	var recorder middleware.RateLimitRecorder
	if srv.metrics != nil {
		recorder = srv.metrics
	}
	mw := middleware.New(srv.l, srv.config, recorder)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Logger())
	srv.gin.Use(mw.CORS())
	if srv.metrics != nil {
		srv.gin.Use(srv.metrics.GinMiddleware())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production, origins=%v", srv.config.CORS.AllowedOrigins)
	} else {
		srv.l.Infof(ctx, "CORS mode: %s, origins=%v", srv.environment, srv.config.CORS.AllowedOrigins)
	}

	return mw
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	api := srv.gin.Group("/api")

	if err := srv.setupOrchestratorDomain(context.Background(), api, mw); err != nil {
		return err
	}

	return nil
}
