package gemini

import "context"

// IGemini defines the interface for the Gemini chat shim.
// Implementations are safe for concurrent use.
type IGemini interface {
	// Chat sends a conversation to Gemini and returns the reply text.
	Chat(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used
	Model() string
}

// New creates a new Gemini client with the given configuration
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
