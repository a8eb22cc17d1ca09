package orchestrator

import (
	"context"
	"time"

	"task-orchestrator/internal/classifier"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Dispatch(ctx context.Context, input DispatchInput) (Envelope, error)
	Classify(ctx context.Context, input ClassifyInput) (ClassifyOutput, error)
}

// Handler performs the work implied by an action. Input is the original
// request text, or the extracted endpoint path for classifier.ActionFetchData.
type Handler interface {
	Handle(ctx context.Context, input string) (HandlerResult, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, input string) (HandlerResult, error)

func (f HandlerFunc) Handle(ctx context.Context, input string) (HandlerResult, error) {
	return f(ctx, input)
}

// Handlers is the dispatch table, keyed by action.
type Handlers map[classifier.Action]Handler

// Recorder receives dispatch observations.
type Recorder interface {
	RecordClassification(category, subcategory string)
	ObserveDispatch(action string, d time.Duration)
	RecordHandlerFailure(action string)
}
