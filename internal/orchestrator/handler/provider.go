package handler

import (
	"context"

	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/provider"
)

type providerHandler struct {
	kind provider.Kind
	gen  Generator
}

// NewProviderHandler returns a Handler forwarding its input to gen as a
// request of the given kind.
func NewProviderHandler(kind provider.Kind, gen Generator) orchestrator.Handler {
	return &providerHandler{kind: kind, gen: gen}
}

func (h *providerHandler) Handle(ctx context.Context, input string) (orchestrator.HandlerResult, error) {
	resp, err := h.gen.Generate(ctx, &provider.Request{Kind: h.kind, Input: input})
	if err != nil {
		return orchestrator.HandlerResult{}, err
	}

	details := resp.Data
	if details == nil {
		details = map[string]any{}
	}
	return orchestrator.HandlerResult{
		IsMock:  resp.Mock,
		Message: resp.Message,
		Details: details,
	}, nil
}
