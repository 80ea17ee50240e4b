package aiprovider

import "context"

// Provider defines the interface for AI chat providers
type Provider interface {
	// Chat sends a chat request and returns a normalized response
	Chat(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "free", "groq", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Request represents a normalized chat request
type Request struct {
	// Model optionally overrides the provider's configured model.
	// For the free aggregator it is a catalog model ID.
	Model       string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents a conversation message
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Response represents a normalized chat response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
}
