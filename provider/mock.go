package provider

import (
	"context"

	"github.com/storelingo/storelingo"
)

// MockClient is a scripted model client for testing and dry runs.
type MockClient struct {
	Responses     []string      // Responses returned call by call; the last one repeats.
	Usage         storelingo.TokenUsage // Usage reported on every call.
	RateRemaining int           // Remaining allowance reported on every call (-1 = absent).
	FailOn        map[int]error // Call index (0-based) to forced error.

	CallCount   int
	LastRequest *storelingo.CompletionRequest
}

// NewMockClient creates a mock that echoes a fixed response on every call.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{
		Responses:     responses,
		Usage:         storelingo.TokenUsage{PromptTokens: 10, CompletionTokens: 10, TotalTokens: 20},
		RateRemaining: -1,
	}
}

// Complete returns the next scripted response.
func (m *MockClient) Complete(ctx context.Context, req storelingo.CompletionRequest) (*storelingo.CompletionResponse, error) {
	call := m.CallCount
	m.CallCount++
	m.LastRequest = &req

	if err, ok := m.FailOn[call]; ok {
		return nil, err
	}

	text := ""
	if len(m.Responses) > 0 {
		if call < len(m.Responses) {
			text = m.Responses[call]
		} else {
			text = m.Responses[len(m.Responses)-1]
		}
	}

	return &storelingo.CompletionResponse{
		Text:          text,
		Usage:         m.Usage,
		RateRemaining: m.RateRemaining,
	}, nil
}

// Reset clears the call count and last request.
func (m *MockClient) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockClient implements ModelClient
var _ ModelClient = (*MockClient)(nil)
