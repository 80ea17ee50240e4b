package http

import (
	"github.com/gin-gonic/gin"

	"workspace-chat/internal/calendar"
	"workspace-chat/pkg/log"
)

// Handler is the public interface for the calendar HTTP delivery layer.
type Handler interface {
	GetWeek(c *gin.Context)
	InvalidateWeek(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
