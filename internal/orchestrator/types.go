package orchestrator

import (
	"time"

	"task-orchestrator/internal/classifier"
)

// --- Domain Model ---

// HandlerResult is produced by exactly one handler per request.
type HandlerResult struct {
	IsMock  bool
	Message string
	Details map[string]any
}

// State describes the classification decision of a request.
type State struct {
	Category        classifier.Category
	Subcategory     classifier.Subcategory
	Action          classifier.Action
	OriginalRequest string
	Timestamp       time.Time
}

// Envelope is the response of a dispatched request. It is built once and
// never persisted.
type Envelope struct {
	State  State
	Result HandlerResult
}

// --- UseCase Inputs ---

type DispatchInput struct {
	Request string
}

type ClassifyInput struct {
	Request string
}

// --- UseCase Outputs ---

// ClassifyOutput is a dry-run classification. Endpoint is set only for
// classifier.ActionFetchData.
type ClassifyOutput struct {
	Category    classifier.Category
	Subcategory classifier.Subcategory
	Action      classifier.Action
	Endpoint    string
}
