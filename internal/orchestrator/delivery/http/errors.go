package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/response"
)

// writeError maps use-case errors to HTTP responses. Validation errors are
// 400; anything else is a 500 carrying the cause text.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyRequest), errors.Is(err, errInvalidBody):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
