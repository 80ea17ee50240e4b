package proxy

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workspace-chat/config"
	"workspace-chat/pkg/log"
)

const defaultTimeout = 60 * time.Second

// Handler forwards free-tier AI requests to the upstream aggregator.
type Handler interface {
	Forward(c *gin.Context)
}

type handler struct {
	l       log.Logger
	cfg     config.ProxyConfig
	client  *http.Client
	limiter *rateLimiter
}

// New creates the free-tier proxy handler.
func New(l log.Logger, cfg config.ProxyConfig) Handler {
	return &handler{
		l:       l,
		cfg:     cfg,
		client:  &http.Client{Timeout: defaultTimeout},
		limiter: newRateLimiter(cfg.RateLimitPerMin),
	}
}
