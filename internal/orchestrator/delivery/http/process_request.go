package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

var errInvalidBody = errors.New("request body must be a JSON object")

// processOrchestrateReq binds and validates the {"request": ...} body shared
// by the dispatch and classify routes.
func (h *handler) processOrchestrateReq(c *gin.Context) (orchestrateReq, error) {
	var req orchestrateReq
	// An empty body binds to io.EOF; treat it as a missing request field.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(c.Request.Context(), "orchestrator.delivery.http.processOrchestrateReq: %v", err)
		return req, errInvalidBody
	}
	return req, req.validate()
}
