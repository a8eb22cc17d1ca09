package usecase

import (
	"context"
	"fmt"
	"strings"

	"task-orchestrator/internal/classifier"
	"task-orchestrator/internal/orchestrator"
)

// Classify reports the decision Dispatch would take, without running a handler.
func (uc *implUseCase) Classify(ctx context.Context, input orchestrator.ClassifyInput) (orchestrator.ClassifyOutput, error) {
	if strings.TrimSpace(input.Request) == "" {
		return orchestrator.ClassifyOutput{}, orchestrator.ErrEmptyRequest
	}

	cls := uc.classifier.Classify(input.Request)
	action, ok := cls.Action()
	if !ok {
		return orchestrator.ClassifyOutput{}, fmt.Errorf("%w: %s/%s", orchestrator.ErrUnknownClassification, cls.Category, cls.Subcategory)
	}

	out := orchestrator.ClassifyOutput{
		Category:    cls.Category,
		Subcategory: cls.Subcategory,
		Action:      action,
	}
	if out.Action == classifier.ActionFetchData {
		out.Endpoint = extractEndpoint(input.Request, uc.defaultEndpoint)
	}

	uc.l.Debugf(ctx, "uc.Classify: category=%s subcategory=%s action=%s", out.Category, out.Subcategory, out.Action)
	return out, nil
}
