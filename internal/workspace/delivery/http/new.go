package http

import (
	"github.com/gin-gonic/gin"

	"workspace-chat/internal/workspace"
	"workspace-chat/pkg/log"
)

// Handler is the public interface for the workspace HTTP delivery layer.
type Handler interface {
	Drive(c *gin.Context)
	Tasks(c *gin.Context)
	Calendar(c *gin.Context)
	YouTube(c *gin.Context)
	Email(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc workspace.UseCase
}

// New creates a new HTTP handler for the workspace domain.
func New(l log.Logger, uc workspace.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
