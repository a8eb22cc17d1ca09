package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"task-orchestrator/pkg/response"
)

const rootMessage = "Task orchestrator API is running"

// Orchestrate godoc
// @Summary     Orchestrate a task request
// @Description Classifies a free-text request, runs the matching handler and returns the decision together with the handler result.
// @Tags        Orchestrator
// @Accept      json
// @Produce     json
// @Param       body body     orchestrateReq true "Task request"
// @Success     200  {object} envelopeResp
// @Failure     400  {object} response.Resp "Missing or empty request"
// @Failure     429  {object} response.Resp "Too many requests"
// @Failure     500  {object} response.Resp "Handler failure"
// @Router      /api/orchestrator [POST]
func (h *handler) Orchestrate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOrchestrateReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	env, err := h.uc.Dispatch(ctx, req.toDispatchInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Dispatch: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newEnvelopeResp(env))
}

// Classify godoc
// @Summary     Classify a task request
// @Description Returns the category, subcategory and action a request would be dispatched to, without running a handler.
// @Tags        Orchestrator
// @Accept      json
// @Produce     json
// @Param       body body     orchestrateReq true "Task request"
// @Success     200  {object} classifyResp
// @Failure     400  {object} response.Resp "Missing or empty request"
// @Router      /api/orchestrator/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processOrchestrateReq(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.toClassifyInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newClassifyResp(output))
}

// Root godoc
// @Summary     API status
// @Tags        Orchestrator
// @Produce     json
// @Success     200 {object} rootResp
// @Router      /api/ [GET]
func (h *handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, rootResp{Message: rootMessage})
}
