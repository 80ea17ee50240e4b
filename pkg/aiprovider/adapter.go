package aiprovider

import (
	"context"
	"fmt"

	"workspace-chat/pkg/freechat"
	"workspace-chat/pkg/gemini"
	"workspace-chat/pkg/groq"
)

// FreeAdapter adapts pkg/freechat to the Provider interface
type FreeAdapter struct {
	client freechat.IFreeChat
	model  string
}

// NewFreeAdapter creates a new free aggregator adapter.
// model is the default catalog model ID used when a request names none.
func NewFreeAdapter(client freechat.IFreeChat, model string) *FreeAdapter {
	if model == "" {
		model = freechat.DefaultChatModelID
	}
	return &FreeAdapter{client: client, model: model}
}

// Chat implements Provider interface
func (a *FreeAdapter) Chat(ctx context.Context, req *Request) (*Response, error) {
	modelID := req.Model
	if modelID == "" {
		modelID = a.model
	}

	messages := make([]freechat.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, freechat.Message{Role: m.Role, Content: m.Content})
	}

	text, err := a.client.Chat(ctx, &freechat.ChatRequest{
		ModelID:     modelID,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "free", Err: err}
	}

	modelName := modelID
	if m, ok := freechat.Models[modelID]; ok {
		modelName = m.Name
	}

	return &Response{
		Text:         text,
		ProviderName: "free",
		ModelName:    modelName,
	}, nil
}

// Name returns provider name
func (a *FreeAdapter) Name() string {
	return "free"
}

// Model returns the default catalog model ID
func (a *FreeAdapter) Model() string {
	return a.model
}

// GroqAdapter adapts pkg/groq to the Provider interface
type GroqAdapter struct {
	client groq.IGroq
}

// NewGroqAdapter creates a new Groq adapter
func NewGroqAdapter(client groq.IGroq) *GroqAdapter {
	return &GroqAdapter{client: client}
}

// Chat implements Provider interface
func (a *GroqAdapter) Chat(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]groq.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, groq.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.ChatCompletion(ctx, &groq.Request{
		Model:       req.Model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "groq", Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: "groq", Err: fmt.Errorf("no choices in response")}
	}

	return &Response{
		Text:         resp.Choices[0].Message.Content,
		ProviderName: "groq",
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *GroqAdapter) Name() string {
	return "groq"
}

// Model returns model name
func (a *GroqAdapter) Model() string {
	return a.client.Model()
}

// GeminiAdapter adapts pkg/gemini to the Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// Chat implements Provider interface
func (a *GeminiAdapter) Chat(ctx context.Context, req *Request) (*Response, error) {
	messages := make([]gemini.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, gemini.Message{Role: m.Role, Content: m.Content})
	}

	resp, err := a.client.Chat(ctx, &gemini.Request{
		Messages:        messages,
		Temperature:     req.Temperature,
		MaxOutputTokens: req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: "gemini", Err: err}
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: "gemini",
		ModelName:    a.client.Model(),
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}
