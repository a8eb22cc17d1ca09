package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-orchestrator/config"
	_ "task-orchestrator/docs" // Swagger docs
	"task-orchestrator/internal/classifier"
	"task-orchestrator/internal/httpserver"
	"task-orchestrator/internal/orchestrator/handler"
	"task-orchestrator/internal/orchestrator/usecase"
	"task-orchestrator/pkg/log"
	"task-orchestrator/pkg/metrics"
	"task-orchestrator/pkg/provider"
)

// @title       Task Orchestrator API
// @description Classifies free-text task requests and dispatches them to text, document, image, data-fetch or direct-answer handlers.
// @version     1
// @host        localhost:8001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Orchestrator...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Metrics
	m := metrics.New(httpserver.ServiceName)

	// 4. Classifier
	rules, err := classifier.DefaultRules(cfg.Classifier.Language)
	if err != nil {
		logger.Error(ctx, "Invalid classifier language: ", err)
		return
	}
	kw := cfg.Classifier.Keywords
	cls, err := classifier.New(rules.Override(classifier.Rules{
		QuestionLeads: kw.QuestionLeads,
		DataMarkers:   kw.DataMarkers,
		ExternalData:  kw.ExternalData,
		Image:         kw.Image,
		Document:      kw.Document,
		Text:          kw.Text,
	}))
	if err != nil {
		logger.Error(ctx, "Failed to build classifier: ", err)
		return
	}
	logger.Infof(ctx, "Classifier initialized (language=%s)", cfg.Classifier.Language)

	// 5. Providers: one manager per kind
	managerCfg := provider.NewManagerConfig(&cfg.Provider)
	generators := make(map[provider.Kind]handler.Generator, len(provider.Kinds()))
	for _, kind := range provider.Kinds() {
		providers, err := provider.InitializeProviders(&cfg.Provider, kind)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize %s providers: %v", kind, err)
			return
		}
		for _, p := range providers {
			logger.Infof(ctx, "Provider %s/%s registered for %s", p.Name(), p.Model(), kind)
		}
		generators[kind] = provider.NewManager(providers, managerCfg, logger)
	}

	handlers, err := handler.NewHandlers(generators)
	if err != nil {
		logger.Error(ctx, "Failed to build handlers: ", err)
		return
	}

	// 6. Orchestrator UseCase
	orchestratorUC := usecase.New(logger, cls, handlers, usecase.Options{
		DefaultEndpoint: cfg.Orchestrator.DefaultEndpoint,
		HandlerTimeout:  cfg.Orchestrator.HandlerTimeout,
		Recorder:        m,
	})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AppConfig:       cfg,
		Metrics:         m,
		OrchestratorUC:  orchestratorUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
