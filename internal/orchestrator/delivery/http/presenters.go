package http

import (
	"strings"

	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/response"
)

// --- Request DTOs ---

type orchestrateReq struct {
	Request string `json:"request"`
}

func (r orchestrateReq) validate() error {
	if strings.TrimSpace(r.Request) == "" {
		return orchestrator.ErrEmptyRequest
	}
	return nil
}

func (r orchestrateReq) toDispatchInput() orchestrator.DispatchInput {
	return orchestrator.DispatchInput{Request: r.Request}
}

func (r orchestrateReq) toClassifyInput() orchestrator.ClassifyInput {
	return orchestrator.ClassifyInput{Request: r.Request}
}

// --- Response DTOs ---

type stateResp struct {
	Category        string             `json:"category"`
	Subcategory     *string            `json:"subcategory"`
	Action          string             `json:"action"`
	OriginalRequest string             `json:"originalRequest"`
	Timestamp       response.Timestamp `json:"timestamp" swaggertype:"string" example:"2024-05-01T15:30:00.123Z"`
}

type resultResp struct {
	IsMock  bool           `json:"isMock"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

type envelopeResp struct {
	State  stateResp  `json:"state"`
	Result resultResp `json:"result"`
}

func (h handler) newEnvelopeResp(env orchestrator.Envelope) envelopeResp {
	details := env.Result.Details
	if details == nil {
		details = map[string]any{}
	}

	return envelopeResp{
		State: stateResp{
			Category:        string(env.State.Category),
			Subcategory:     nullableString(string(env.State.Subcategory)),
			Action:          string(env.State.Action),
			OriginalRequest: env.State.OriginalRequest,
			Timestamp:       response.Timestamp(env.State.Timestamp),
		},
		Result: resultResp{
			IsMock:  env.Result.IsMock,
			Message: env.Result.Message,
			Details: details,
		},
	}
}

// ---

type classifyResp struct {
	Category    string  `json:"category"`
	Subcategory *string `json:"subcategory"`
	Action      string  `json:"action"`
	Endpoint    string  `json:"endpoint,omitempty"`
}

func (h handler) newClassifyResp(o orchestrator.ClassifyOutput) classifyResp {
	return classifyResp{
		Category:    string(o.Category),
		Subcategory: nullableString(string(o.Subcategory)),
		Action:      string(o.Action),
		Endpoint:    o.Endpoint,
	}
}

// ---

type rootResp struct {
	Message string `json:"message"`
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
