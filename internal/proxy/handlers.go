package proxy

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	requestTypeChat  = "chat"
	requestTypeImage = "image_generation"
)

type forwardReq struct {
	Type string          `json:"type" binding:"required"`
	Data json.RawMessage `json:"data" binding:"required"`
}

// Forward godoc
// @Summary     Free-tier AI proxy
// @Description Forwards the request body's data field to the free aggregator, selected by type (chat or image_generation), and relays the upstream answer.
// @Tags        Proxy
// @Accept      json
// @Produce     json
// @Param       body body forwardReq true "Typed payload"
// @Success     200 {object} map[string]any
// @Failure     400 {object} map[string]any "Unknown type or bad body"
// @Failure     429 {object} map[string]any "Rate limit exceeded"
// @Failure     500 {object} map[string]any "Unparseable upstream answer"
// @Router      /api/ai/providers/free [POST]
func (h *handler) Forward(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.limiter.Allow(extractIP(c.Request)); err != nil {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, slow down."})
		return
	}

	var req forwardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "proxy.Forward.ShouldBindJSON: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body."})
		return
	}

	var upstreamURL string
	switch req.Type {
	case requestTypeChat:
		upstreamURL = h.cfg.ChatURL
	case requestTypeImage:
		upstreamURL = h.cfg.ImageURL
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown request type: " + req.Type})
		return
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, upstreamURL, bytes.NewReader(req.Data))
	if err != nil {
		h.l.Errorf(ctx, "proxy.Forward.NewRequestWithContext: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not reach the provider."})
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if h.cfg.BearerToken != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.cfg.BearerToken)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		h.l.Errorf(ctx, "proxy.Forward.client.Do: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not reach the provider."})
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.l.Errorf(ctx, "proxy.Forward.ReadAll: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not read the provider answer."})
		return
	}

	// JSON answers pass through with the upstream status. Some image models
	// answer with a bare URL instead.
	if json.Valid(body) {
		c.Data(resp.StatusCode, "application/json", body)
		return
	}

	raw := strings.TrimSpace(string(body))
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		c.JSON(http.StatusOK, gin.H{"url": raw})
		return
	}

	h.l.Errorf(ctx, "proxy.Forward: unparseable upstream answer (status %d)", resp.StatusCode)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "The provider answered in an unexpected format.",
		"raw":   raw,
	})
}
