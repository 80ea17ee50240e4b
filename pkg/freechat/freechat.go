package freechat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

type freeChatImpl struct {
	chatURL     string
	imageURL    string
	bearerToken string
	httpClient  *http.Client
}

func newFreeChatImpl(cfg Config) *freeChatImpl {
	return &freeChatImpl{
		chatURL:     cfg.ChatURL,
		imageURL:    cfg.ImageURL,
		bearerToken: cfg.BearerToken,
		httpClient:  cfg.HTTPClient,
	}
}

// Chat sends a text conversation to the aggregator and normalizes the reply.
func (f *freeChatImpl) Chat(ctx context.Context, req *ChatRequest) (string, error) {
	modelID := req.ModelID
	if modelID == "" {
		modelID = DefaultChatModelID
	}
	model, ok := Models[modelID]
	if !ok {
		return "", fmt.Errorf("freechat: unknown model id %q", modelID)
	}
	if !HasCapability(modelID, CapabilityTextGeneration) {
		return "", fmt.Errorf("freechat: model %q does not support text generation", model.Name)
	}

	temperature := req.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	messages := make([]any, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, m)
	}

	resp, raw, err := f.post(ctx, f.chatURL, chatPayload{
		Model:       model.Name,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", err
	}
	return extractText(resp, raw)
}

// GenerateImage asks an image model for a picture and returns its URL.
func (f *freeChatImpl) GenerateImage(ctx context.Context, req *ImageRequest) (string, error) {
	modelID := req.ModelID
	if modelID == "" {
		modelID = DefaultImageModelID
	}
	model, ok := Models[modelID]
	if !ok {
		return "", fmt.Errorf("freechat: unknown model id %q", modelID)
	}
	if !HasCapability(modelID, CapabilityImageGeneration) {
		return "", fmt.Errorf("freechat: model %q does not support image generation", model.Name)
	}

	size := req.Size
	if size == "" {
		size = DefaultImageSize
	}

	resp, raw, err := f.post(ctx, f.imageURL, imagePayload{
		Model:  model.Name,
		Prompt: req.Prompt,
		Size:   size,
		N:      1,
	})
	if err != nil {
		return "", err
	}

	if resp != nil {
		if resp.URL != "" {
			return resp.URL, nil
		}
		if len(resp.Data) > 0 && resp.Data[0].URL != "" {
			return resp.Data[0].URL, nil
		}
	}
	// Some image upstreams reply with the bare URL as the body.
	if trimmed := strings.TrimSpace(raw); strings.HasPrefix(trimmed, "http") {
		return trimmed, nil
	}
	return "", fmt.Errorf("freechat: no image URL in response")
}

// AnalyzeImage asks a vision model to describe the image at the given URL.
func (f *freeChatImpl) AnalyzeImage(ctx context.Context, req *VisionRequest) (string, error) {
	modelID := req.ModelID
	if modelID == "" {
		modelID = DefaultVisionModelID
	}
	model, ok := Models[modelID]
	if !ok {
		return "", fmt.Errorf("freechat: unknown model id %q", modelID)
	}
	if !HasCapability(modelID, CapabilityImageVision) {
		return "", fmt.Errorf("freechat: model %q does not support image vision", model.Name)
	}

	question := req.Question
	if question == "" {
		question = "What's in this image?"
	}
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultVisionMaxTokens
	}

	content := []visionContentPart{
		{Type: "text", Text: question},
		{Type: "image_url", ImageURL: &visionImageURL{URL: req.ImageURL}},
	}
	messages := []any{
		map[string]any{"role": "user", "content": content},
	}

	resp, raw, err := f.post(ctx, f.chatURL, chatPayload{
		Model:     model.Name,
		Messages:  messages,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return "", err
	}
	return extractText(resp, raw)
}

// post sends a payload with the shared bearer token. The parsed envelope may
// be nil when the body is not JSON; the raw body is always returned so callers
// can fall back on it.
func (f *freeChatImpl) post(ctx context.Context, url string, payload any) (*aggregatorResponse, string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, "", fmt.Errorf("freechat: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("freechat: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+f.bearerToken)

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return nil, "", fmt.Errorf("freechat: failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("freechat: failed to read response: %w", err)
	}
	raw := string(respBody)

	var parsed aggregatorResponse
	parseErr := json.Unmarshal(respBody, &parsed)

	if resp.StatusCode != http.StatusOK {
		if parseErr == nil && parsed.Error != "" {
			return nil, raw, fmt.Errorf("freechat: API error %d: %s", resp.StatusCode, parsed.Error)
		}
		return nil, raw, fmt.Errorf("freechat: API error %d: %s", resp.StatusCode, raw)
	}

	if parseErr != nil {
		return nil, raw, nil
	}
	return &parsed, raw, nil
}

// extractText pulls the reply text out of whichever shape the upstream used.
func extractText(resp *aggregatorResponse, raw string) (string, error) {
	if resp != nil {
		if len(resp.Choices) > 0 && resp.Choices[0].Message.Content != "" {
			return resp.Choices[0].Message.Content, nil
		}
		if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 && resp.Candidates[0].Content.Parts[0].Text != "" {
			return resp.Candidates[0].Content.Parts[0].Text, nil
		}
	}
	// A bare JSON string body is also a valid reply.
	var s string
	if err := json.Unmarshal([]byte(raw), &s); err == nil && s != "" {
		return s, nil
	}
	return "", fmt.Errorf("freechat: unrecognized response format")
}
