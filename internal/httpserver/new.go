package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"task-orchestrator/config"
	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/log"
	"task-orchestrator/pkg/metrics"
)

const defaultShutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Cross-cutting
	config  *config.Config
	metrics *metrics.Metrics

	// Orchestrator domain
	orchestratorUC orchestrator.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	// AppConfig feeds CORS and rate limiting.
	AppConfig *config.Config
	Metrics   *metrics.Metrics

	OrchestratorUC orchestrator.UseCase
}

// New creates a new HTTPServer instance with all routes mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		config:          cfg.AppConfig,
		metrics:         cfg.Metrics,
		orchestratorUC:  cfg.OrchestratorUC,
	}

	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler returns the root HTTP handler.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.config == nil {
		return errors.New("app config is required")
	}
	if srv.orchestratorUC == nil {
		return errors.New("orchestrator usecase is required")
	}
	return nil
}
