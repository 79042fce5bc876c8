package llmprovider

import (
	"context"

	"research-chatbot/pkg/gemini"
	"research-chatbot/pkg/openrouter"
)

// OpenRouterAdapter adapts pkg/openrouter to the llmprovider.Provider interface
type OpenRouterAdapter struct {
	client openrouter.IOpenRouter
}

// NewOpenRouterAdapter creates a new OpenRouter adapter
func NewOpenRouterAdapter(client openrouter.IOpenRouter) *OpenRouterAdapter {
	return &OpenRouterAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *OpenRouterAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	orReq := &openrouter.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.SystemInstruction != "" {
		orReq.Messages = append(orReq.Messages, openrouter.Message{
			Role:    "system",
			Content: req.SystemInstruction,
		})
	}
	for _, msg := range req.Messages {
		orReq.Messages = append(orReq.Messages, openrouter.Message{
			Role:    msg.Role,
			Content: msg.Text,
		})
	}

	resp, err := a.client.GenerateContent(ctx, orReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: a.Name(),
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *OpenRouterAdapter) Name() string {
	return "openrouter"
}

// Model returns the model name
func (a *OpenRouterAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements the Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	for _, msg := range req.Messages {
		role := msg.Role
		// Gemini uses "model" where chat-completions APIs use "assistant"
		if role == "assistant" {
			role = "model"
		}
		geminiReq.Messages = append(geminiReq.Messages, gemini.Content{
			Role: role,
			Text: msg.Text,
		})
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}
	if resp.Text == "" {
		return nil, ErrEmptyResponse
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns the model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
