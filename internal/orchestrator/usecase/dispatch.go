package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"task-orchestrator/internal/classifier"
	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/async"
)

// Dispatch classifies the request, runs the handler bound to its action and
// assembles the envelope. A handler failure yields a *orchestrator.HandlerError
// and no envelope.
func (uc *implUseCase) Dispatch(ctx context.Context, input orchestrator.DispatchInput) (orchestrator.Envelope, error) {
	if strings.TrimSpace(input.Request) == "" {
		return orchestrator.Envelope{}, orchestrator.ErrEmptyRequest
	}

	cls := uc.classifier.Classify(input.Request)
	uc.recordClassification(cls)

	action, ok := cls.Action()
	if !ok {
		uc.l.Errorf(ctx, "uc.Dispatch: no action for category=%s subcategory=%s", cls.Category, cls.Subcategory)
		return orchestrator.Envelope{}, &orchestrator.HandlerError{Err: fmt.Errorf("%w: %s/%s", orchestrator.ErrUnknownClassification, cls.Category, cls.Subcategory)}
	}

	h, ok := uc.handlers[action]
	if !ok {
		uc.l.Errorf(ctx, "uc.Dispatch: no handler for action %s", action)
		return orchestrator.Envelope{}, &orchestrator.HandlerError{Action: action, Err: orchestrator.ErrHandlerNotRegistered}
	}

	arg := input.Request
	if action == classifier.ActionFetchData {
		arg = extractEndpoint(input.Request, uc.defaultEndpoint)
	}

	uc.l.Debugf(ctx, "uc.Dispatch: category=%s subcategory=%s action=%s", cls.Category, cls.Subcategory, action)

	result, err := uc.invoke(ctx, action, h, arg)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Dispatch %s: %v", action, err)
		return orchestrator.Envelope{}, &orchestrator.HandlerError{Action: action, Err: err}
	}

	return orchestrator.Envelope{
		State: orchestrator.State{
			Category:        cls.Category,
			Subcategory:     cls.Subcategory,
			Action:          action,
			OriginalRequest: input.Request,
			Timestamp:       uc.now(),
		},
		Result: result,
	}, nil
}

// invoke runs h as a future so mock delays and network-bound providers share
// the same suspension point.
func (uc *implUseCase) invoke(ctx context.Context, action classifier.Action, h orchestrator.Handler, arg string) (orchestrator.HandlerResult, error) {
	if uc.handlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.handlerTimeout)
		defer cancel()
	}

	start := time.Now()
	result, err := async.Go(ctx, func(ctx context.Context) (orchestrator.HandlerResult, error) {
		return h.Handle(ctx, arg)
	}).Await(ctx)

	if uc.recorder != nil {
		uc.recorder.ObserveDispatch(string(action), time.Since(start))
		if err != nil {
			uc.recorder.RecordHandlerFailure(string(action))
		}
	}

	return result, err
}

func (uc *implUseCase) recordClassification(cls classifier.Classification) {
	if uc.recorder != nil {
		uc.recorder.RecordClassification(string(cls.Category), string(cls.Subcategory))
	}
}
