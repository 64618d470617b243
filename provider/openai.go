package provider

import (
	"context"

	"github.com/sashabaranov/go-openai"
	"github.com/storelingo/storelingo"
)

// OpenAIClient implements ModelClient using OpenAI's chat completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// OpenAIConfig holds configuration for the OpenAI client.
type OpenAIConfig struct {
	APIKey  string // OpenAI API key
	Model   string // Model to use (default: "gpt-4o-mini")
	BaseURL string // Custom base URL (optional)
}

// NewOpenAIClient creates a new OpenAI model client.
func NewOpenAIClient(cfg OpenAIConfig) *OpenAIClient {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Complete sends one prompt to OpenAI and returns the raw completion text,
// token usage, and the remaining-request allowance from the rate-limit
// response headers (-1 when the header is absent).
func (c *OpenAIClient) Complete(ctx context.Context, req storelingo.CompletionRequest) (*storelingo.CompletionResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.System},
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return nil, &storelingo.ProviderError{
			Message: "OpenAI API call failed",
			Cause:   err,
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &storelingo.ProviderError{
			Message: "no response from OpenAI",
		}
	}

	remaining := -1
	if resp.Header().Get("x-ratelimit-remaining-requests") != "" {
		remaining = resp.GetRateLimitHeaders().RemainingRequests
	}

	return &storelingo.CompletionResponse{
		Text: resp.Choices[0].Message.Content,
		Usage: storelingo.TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		RateRemaining: remaining,
	}, nil
}

// Verify OpenAIClient implements ModelClient
var _ ModelClient = (*OpenAIClient)(nil)
