package provider

import (
	"context"
	"fmt"
	"time"
)

const (
	MockName          = "mock"
	DefaultMockDelay  = 500 * time.Millisecond
	mockSampleRunes   = 50
	mockImageURL      = "https://example.com/generated-image.png"
	mockPendingText   = "pending integration (OpenAI/Claude/Gemini)"
	mockPendingDoc    = "pending integration"
	mockPendingImage  = "pending integration (DALL-E/Stable Diffusion)"
	mockDocumentShape = "Full report with introduction, body and conclusion"
)

// MockProvider stands in for a real backend. It suspends for a fixed delay
// and returns a deterministic placeholder echoing the input.
type MockProvider struct {
	kind  Kind
	delay time.Duration
}

var _ Provider = (*MockProvider)(nil)

// NewMockProvider creates a mock for kind. A negative delay means no delay.
func NewMockProvider(kind Kind, delay time.Duration) *MockProvider {
	return &MockProvider{kind: kind, delay: delay}
}

// Generate implements Provider.
func (p *MockProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Kind != p.kind {
		return nil, ErrInvalidRequest
	}

	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	resp := &Response{
		Mock:         true,
		ProviderName: p.Name(),
		ModelName:    p.Model(),
	}

	switch p.kind {
	case KindText:
		resp.Message = "[MOCK] Text generation API call completed successfully!"
		resp.Data = map[string]any{
			"prompt":   req.Input,
			"provider": mockPendingText,
			"sample":   fmt.Sprintf("Creative advertising campaign for: %s...", truncate(req.Input, mockSampleRunes)),
		}
	case KindDocument:
		resp.Message = "[MOCK] Generating structured document via API..."
		resp.Data = map[string]any{
			"prompt":   req.Input,
			"format":   "PDF/DOCX",
			"provider": mockPendingDoc,
			"sample":   mockDocumentShape,
		}
	case KindImage:
		resp.Message = "[MOCK] Generating image via AI API..."
		resp.Data = map[string]any{
			"description": req.Input,
			"provider":    mockPendingImage,
			"imageUrl":    mockImageURL,
		}
	case KindData:
		resp.Message = fmt.Sprintf("[MOCK] Querying data from endpoint: %s", req.Input)
		resp.Data = map[string]any{
			"endpoint": req.Input,
			"method":   "GET",
			"sample": map[string]any{
				"status": "success",
				"data":   "Data returned by the API",
			},
		}
	default:
		return nil, fmt.Errorf("%w: kind %q", ErrInvalidRequest, p.kind)
	}

	return resp, nil
}

// Name returns provider name.
func (p *MockProvider) Name() string {
	return MockName
}

// Model returns the mocked kind.
func (p *MockProvider) Model() string {
	return "mock-" + string(p.kind)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
