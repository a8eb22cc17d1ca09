package orchestrator

import (
	"errors"
	"fmt"

	"task-orchestrator/internal/classifier"
)

var (
	ErrEmptyRequest          = errors.New(`field "request" is required`)
	ErrHandlerNotRegistered  = errors.New("no handler registered for action")
	ErrUnknownClassification = errors.New("classification has no action")
)

// HandlerError reports a failure inside the handler bound to Action.
type HandlerError struct {
	Action classifier.Action
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler %s: %v", e.Action, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
