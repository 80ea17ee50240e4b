package freechat

import "context"

// IFreeChat defines the interface for the free aggregator client.
type IFreeChat interface {
	// Chat sends a text conversation to a catalog model and returns the reply text.
	Chat(ctx context.Context, req *ChatRequest) (string, error)

	// GenerateImage asks an image model for a picture and returns its URL.
	GenerateImage(ctx context.Context, req *ImageRequest) (string, error)

	// AnalyzeImage asks a vision model to describe the image at the given URL.
	AnalyzeImage(ctx context.Context, req *VisionRequest) (string, error)
}

// New creates a new free aggregator client with the given configuration
func New(cfg Config) (IFreeChat, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newFreeChatImpl(cfg), nil
}
