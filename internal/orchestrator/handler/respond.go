package handler

import (
	"context"
	"fmt"

	"task-orchestrator/internal/orchestrator"
)

const directAnswer = "This is a direct answer based on built-in knowledge. For more complex answers, integrate an LLM."

type directResponder struct{}

// NewDirectResponder returns the synchronous informational handler. It has
// no knowledge base and acknowledges the question.
func NewDirectResponder() orchestrator.Handler {
	return directResponder{}
}

func (directResponder) Handle(_ context.Context, question string) (orchestrator.HandlerResult, error) {
	return orchestrator.HandlerResult{
		IsMock:  false,
		Message: fmt.Sprintf(`Informational answer for: "%s"`, question),
		Details: map[string]any{
			"answer": directAnswer,
		},
	}, nil
}
