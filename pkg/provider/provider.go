package provider

import "context"

// Kind is the kind of work a provider performs.
type Kind string

const (
	KindText     Kind = "text"
	KindDocument Kind = "document"
	KindImage    Kind = "image"
	KindData     Kind = "data"
)

// Kinds lists every provider kind.
func Kinds() []Kind {
	return []Kind{KindText, KindDocument, KindImage, KindData}
}

// Provider defines the interface for generation and data-fetch backends.
type Provider interface {
	// Generate runs the request and returns a normalized response.
	Generate(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g. "mock").
	Name() string

	// Model returns the model or backend identifier in use.
	Model() string
}

// Request is a normalized provider request. Input is a prompt for the
// generation kinds and an endpoint path for KindData.
type Request struct {
	Kind  Kind
	Input string
}

// Response is a normalized provider response.
type Response struct {
	Message      string
	Data         map[string]any
	Mock         bool
	ProviderName string
	ModelName    string
}
