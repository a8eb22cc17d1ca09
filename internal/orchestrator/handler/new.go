package handler

import (
	"context"
	"fmt"

	"task-orchestrator/internal/classifier"
	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/provider"
)

// Generator runs provider requests. *provider.Manager implements it.
type Generator interface {
	Generate(ctx context.Context, req *provider.Request) (*provider.Response, error)
}

var actionKinds = map[classifier.Action]provider.Kind{
	classifier.ActionGenerateText:     provider.KindText,
	classifier.ActionGenerateDocument: provider.KindDocument,
	classifier.ActionGenerateImage:    provider.KindImage,
	classifier.ActionFetchData:        provider.KindData,
}

// NewHandlers builds the dispatch table: one provider-backed handler per
// generation or fetch action plus the direct responder.
func NewHandlers(generators map[provider.Kind]Generator) (orchestrator.Handlers, error) {
	handlers := orchestrator.Handlers{
		classifier.ActionRespondDirect: NewDirectResponder(),
	}
	for action, kind := range actionKinds {
		gen, ok := generators[kind]
		if !ok || gen == nil {
			return nil, fmt.Errorf("handler.NewHandlers: no generator for %s (%s)", action, kind)
		}
		handlers[action] = NewProviderHandler(kind, gen)
	}
	return handlers, nil
}
