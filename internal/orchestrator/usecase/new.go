package usecase

import (
	"time"

	"task-orchestrator/internal/classifier"
	"task-orchestrator/internal/orchestrator"
	"task-orchestrator/pkg/log"
)

const defaultEndpoint = "/default"

// Options holds the optional dispatcher settings.
type Options struct {
	// DefaultEndpoint is used when no path is found in a fetch request.
	DefaultEndpoint string
	// HandlerTimeout bounds each handler call; 0 means no timeout.
	HandlerTimeout time.Duration
	// Recorder receives metrics; nil disables them.
	Recorder orchestrator.Recorder
}

// implUseCase is the private implementation of orchestrator.UseCase.
type implUseCase struct {
	l          log.Logger
	classifier classifier.Classifier
	handlers   orchestrator.Handlers

	defaultEndpoint string
	handlerTimeout  time.Duration
	recorder        orchestrator.Recorder
	now             func() time.Time
}

var _ orchestrator.UseCase = (*implUseCase)(nil)

// New creates a new orchestrator UseCase implementation. The handler table is
// copied.
func New(l log.Logger, cls classifier.Classifier, handlers orchestrator.Handlers, opts Options) *implUseCase {
	table := make(orchestrator.Handlers, len(handlers))
	for action, h := range handlers {
		table[action] = h
	}

	endpoint := opts.DefaultEndpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &implUseCase{
		l:               l,
		classifier:      cls,
		handlers:        table,
		defaultEndpoint: endpoint,
		handlerTimeout:  opts.HandlerTimeout,
		recorder:        opts.Recorder,
		now:             time.Now,
	}
}
