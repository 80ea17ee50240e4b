package http

import (
	"github.com/gin-gonic/gin"

	"workspace-chat/internal/chat"
	"workspace-chat/pkg/log"
)

// Handler is the HTTP surface of the chat domain.
type Handler interface {
	Send(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chat.UseCase
}

// New creates a chat HTTP handler.
func New(l log.Logger, uc chat.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
