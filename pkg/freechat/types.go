package freechat

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. The bearer token gates the free tier
// upstream and is not a per-user credential.
type Config struct {
	ChatURL     string
	ImageURL    string
	BearerToken string
	HTTPClient  *http.Client
}

// Validate fills defaults and rejects unusable configs.
func (c *Config) Validate() error {
	if c.BearerToken == "" {
		return fmt.Errorf("freechat: bearer token is required")
	}
	if c.ChatURL == "" {
		c.ChatURL = DefaultChatURL
	}
	if c.ImageURL == "" {
		c.ImageURL = DefaultImageURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Message is one turn of a text conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest asks a catalog model for a text reply.
// ModelID is a catalog key; empty means DefaultChatModelID.
type ChatRequest struct {
	ModelID     string
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// ImageRequest asks an image model for a picture.
// ModelID empty means DefaultImageModelID.
type ImageRequest struct {
	ModelID string
	Prompt  string
	Size    string
}

// VisionRequest asks a vision model to describe an image.
// ModelID empty means DefaultVisionModelID.
type VisionRequest struct {
	ModelID   string
	ImageURL  string
	Question  string
	MaxTokens int
}

// ---- aggregator wire format ----

type chatPayload struct {
	Model       string `json:"model"`
	Messages    []any  `json:"messages"`
	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int     `json:"max_tokens,omitempty"`
}

type imagePayload struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Size   string `json:"size"`
	N      int    `json:"n"`
}

type visionContentPart struct {
	Type     string           `json:"type"`
	Text     string           `json:"text,omitempty"`
	ImageURL *visionImageURL  `json:"image_url,omitempty"`
}

type visionImageURL struct {
	URL string `json:"url"`
}

// aggregatorResponse covers the reply shapes the free tier is known to emit:
// OpenAI-style choices, Gemini-style candidates, and image URL envelopes.
type aggregatorResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	URL  string `json:"url"`
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error string `json:"error"`
}
