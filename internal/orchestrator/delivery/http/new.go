package http

import (
	"github.com/gin-gonic/gin"

	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/log"
)

// Handler is the public interface for the orchestrator HTTP delivery layer.
type Handler interface {
	Orchestrate(c *gin.Context)
	Classify(c *gin.Context)
	Root(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc orchestrator.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the orchestrator domain.
func New(l log.Logger, uc orchestrator.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
